// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// All content store I/O is issued strictly sequentially: one page at a
// time, one subtree at a time. The only nested resource is call-stack
// depth during tree materialization, bounded by maxDepth.
package services
