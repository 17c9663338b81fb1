/*
Package validate checks that a reorganized project has the expected shape.

	+-------------+
	|   Runner    |
	| (ordered)   |
	+------+------+
	       |
	+------+------+------+------+------+
	| dirs | files| imports| config| docs|
	+------+------+--------+-------+-----+
	       |
	+------+------+
	|   Results   |
	| pass/warn/  |
	|   error     |
	+-------------+

🎯 Purpose:
- Inspect directories, files, module resolvability, configuration sections
  and documentation of a project tree
- Classify each observation as passed, warning or error
- Decide the overall outcome from the error bucket alone

🔄 Flow:
1. Build checks from a Layout
2. Runner executes every check, always, in order
3. Errors and panics inside a check become one error finding
4. WriteSummary prints counts and lists

⚠️ Severity:
- Missing directories, files and configuration file are errors
- Unresolvable modules, missing config sections and weak docs are warnings
- Only errors fail a run

🔍 Example:

	ws := workspace.New(root)
	runner := validate.NewRunner(console, validate.Checks(ws, validate.DefaultLayout(), validate.NewPythonResolver(root))...)
	results := runner.Run(ctx)
	validate.WriteSummary(os.Stdout, results)
*/
package validate
