// Package host implements the boundary with a host automation runtime.
//
// The runtime hands ensure a file of arguments and reads a JSON result from
// stdout. Argument validation and result emission live here, so the
// reconciler itself only ever sees validated parameters:
//
//	args file --LoadArgs--> raw map --ValidateArgs--> Params
//	Params --reconcile--> Outcome --EmitResult--> stdout + exit code
package host
