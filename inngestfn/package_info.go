// Package inngestfn runs a single Inngest function step in its own process.
//
// A host process invokes the runner with two arguments, the path of the step module and the JSON
// invocation context. The runner loads the step, calls it once, and writes exactly one line of JSON to
// standard output: the step's response on success, or {"error":...,"status":500} on any failure, in
// which case the exit code is 1.
//
// Steps implement the Step interface. The portable way to provide them is to link them into the runner
// binary and register them with a StaticLoader:
//
//	func main() {
//	    inngestfn.Main(inngestfn.StaticLoader{
//	        "signup": inngestfn.StepFunc(handleSignup),
//	    })
//	}
//
// On platforms that support Go plugins, PluginLoader can load a step from a shared object instead.
package inngestfn
