// Package nvme defines the command and status vocabulary shared by the
// simulated NVMe front end: controller register offsets, admin/I/O/fabric
// opcodes, feature, log page and identify selectors, the three status code
// tables, completion status fields, SGL descriptor tags and the SMART /
// Health Information log page.
//
// Every numeric value here is part of the wire compatibility surface and is
// never renumbered.
//
// # Profiles
//
// Several opcode and selector values mean different things under different
// optional extensions. The active [Profile] is always an explicit argument:
//
//	r := nvme.ClassifyIO(0x90, nvme.ProfileOpenChannel12) // PhysicalBlockErase
//	r = nvme.ClassifyIO(0x90, nvme.ProfileOpenChannel20)  // VectorChunkReset
//
// Standard opcodes are recognized under every profile. Which profiles claim
// an overlapping value is reported by [AdminClaims] and [IOClaims].
//
// # Totality
//
// Classification and decoding never fail. Unknown values come back as
// results that report Known() == false and keep the raw value; their Err()
// method returns a typed error ([*UnknownOpcodeError],
// [*UnrecognizedStatusError], [*UnknownSGLNibbleError],
// [*UnknownSelectorError]) that [StatusFor] maps to the status a controller
// posts back to the submitter.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. [HealthInfo] is a
// plain value; callers sharing one instance provide their own locking.
package nvme
