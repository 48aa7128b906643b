// Package prof captures pprof profiles of nvmedef runs.
//
// The package is conditionally compiled using the "profile" build tag:
//
//	go build -tags profile ./cmd/nvmedef
//
// Without the tag every function is a no-op, so the --cpu-profile and
// --heap-profile flags cost nothing in a normal build.
//
// # CPU Profiling
//
// CPU profiling streams samples to a file and requires explicit start/stop:
//
//	prof.StartCPU("cpu.prof")
//	defer prof.StopCPU()
//
// Starting a second CPU profile while one is active returns
// [ErrCPUProfileActive].
//
// # Snapshot Profiles
//
// Heap, allocation and goroutine profiles capture a point-in-time snapshot:
//
//	prof.Write(prof.ProfileHeap, "heap.prof")
//
// [ProfileCPU] cannot be used with [Write]; use [StartCPU]/[StopCPU].
package prof
