/*
Package config loads the optional restructure tool configuration.

	            +-------------+
	            |   Config    |
	            | (overrides) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |  JSON   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Override the transfer plan, header list, directories and package roots
- Override the layout the validator expects
- Fall back to the built-in MOCU-OED defaults for anything omitted

🔄 Flow:
1. Load picks a parser by file extension
2. The parser decodes with unknown fields rejected
3. Validate checks entries and transfer modes

📝 YAML:

	transfers:
	  - source: N5ForShare/MOCU.py
	    destination: src/core/mocu_cuda.py
	  - source: N5ForShare/determineSyncTwo.py
	    destination: src/core/sync_detection.py
	    mode: append
	validation:
	  min_doc_length: 50

📝 HCL:

	transfer {
	  source      = "N5ForShare/determineSyncTwo.py"
	  destination = "src/core/sync_detection.py"
	  mode        = mode.append
	}

	validation {
	  required_dirs = ["src", "tests"]
	  import {
	    module = "src.utils.config"
	  }
	}

🔍 Example:

	cfg, err := config.Load(ctx, "restructure.yaml")
	if err != nil {
		return err
	}
	p, err := cfg.Plan()
*/
package config
