// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plan

// 📝 HeaderSpec names a destination file and the description its header carries
type HeaderSpec struct {
	Path        string
	Description string
}

// 🏭 Default returns the MOCU-OED reorganization plan
func Default() Plan {
	return Plan{
		// core
		{Source: "N5ForShare/MOCU.py", Destination: "src/core/mocu_cuda.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/determineSyncN.py", Destination: "src/core/sync_detection.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/determineSyncTwo.py", Destination: "src/core/sync_detection.py", Mode: ModeAppend},
		{Source: "N5ForShare/mocu_comp.py", Destination: "src/core/sync_detection.py", Mode: ModeAppend},

		// models
		{Source: "models/MP_train.py", Destination: "src/models/trainer.py", Mode: ModeOverwrite},

		// strategies
		{Source: "N5ForShare/findMPSequence.py", Destination: "src/strategies/mp_strategy.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/findMOCUSequence.py", Destination: "src/strategies/mocu_strategy.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/findEntropySequence.py", Destination: "src/strategies/entropy_strategy.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/findRandomSequence.py", Destination: "src/strategies/random_strategy.py", Mode: ModeOverwrite},

		// utils
		{Source: "models/utils.py", Destination: "src/utils/visualization.py", Mode: ModeOverwrite},

		// scripts
		{Source: "N5ForShare/drawResults.py", Destination: "scripts/4_visualize_results.py", Mode: ModeOverwrite},
		{Source: "N5ForShare/runMainForPerformanceMeasure.py", Destination: "scripts/3_run_experiment.py", Mode: ModeOverwrite},
	}
}

// 🏭 DefaultHeaders returns the files that get a documentation header after transfer
func DefaultHeaders() []HeaderSpec {
	return []HeaderSpec{
		{Path: "src/core/mocu_cuda.py", Description: "CUDA-accelerated MOCU computation"},
		{Path: "src/core/sync_detection.py", Description: "Synchronization detection for oscillator systems"},
		{Path: "src/models/trainer.py", Description: "Neural network training utilities"},
		{Path: "src/strategies/mp_strategy.py", Description: "Message passing-based OED strategy"},
		{Path: "src/strategies/mocu_strategy.py", Description: "ODE-based MOCU strategy"},
		{Path: "src/strategies/entropy_strategy.py", Description: "Entropy-based OED strategy"},
		{Path: "src/strategies/random_strategy.py", Description: "Random baseline strategy"},
	}
}

// 🏭 DefaultDirectories returns the directories a migration provisions
func DefaultDirectories() []string {
	return []string{
		"src/core",
		"src/models",
		"src/strategies",
		"src/utils",
		"scripts",
		"tests",
		"logs",
		"configs",
		"Dataset",
		"Experiment",
		"results",
	}
}

// 🏭 DefaultPackageRoots returns the glob patterns of directories that get a package marker
func DefaultPackageRoots() []string {
	return []string{"src/**"}
}
