// Package trial orchestrates one run of the workbench: generate an
// instance, reformulate it into intervals, run the AMC solver over it
// and, when the arboricity bound is 1, both baseline strategies, and
// report what each produced. A trial
// owns nothing that outlives it — every run starts from a fresh
// generator and a fresh solver.
package trial

import (
	"github.com/kamil-cwintal/no-flip-tester/pkg/amc"
	"github.com/kamil-cwintal/no-flip-tester/pkg/baseline/brodal"
	"github.com/kamil-cwintal/no-flip-tester/pkg/baseline/kowalik"
	"github.com/kamil-cwintal/no-flip-tester/pkg/errkind"
	"github.com/kamil-cwintal/no-flip-tester/pkg/generator"
	"github.com/kamil-cwintal/no-flip-tester/pkg/instance"
	"github.com/kamil-cwintal/no-flip-tester/pkg/intervalset"
)

const op = "trial"

// StrategyName identifies one of the three orientation strategies a
// trial runs side by side.
const (
	StrategyAMC     = "amc"
	StrategyKowalik = "kowalik"
	StrategyBrodal  = "brodal"
)

// Outcome is one strategy's result for a single trial.
type Outcome struct {
	Strategy     string
	MaxOutdegree int
	Flips        int
}

// Result is everything one trial produced.
type Result struct {
	Instance instance.Instance
	Outcomes []Outcome
}

// Params parameterises one trial.
type Params struct {
	Graph       generator.Config
	OutdegBound int
}

// Run generates one instance from p.Graph and evaluates AMC against
// it, plus Kowalik and Brodal–Fagerberg when the instance's arboricity
// bound is 1, the only bound either baseline supports.
func Run(p Params) Result {
	gen := generator.New(p.Graph)
	inst := gen.Generate()

	set := intervalset.FromCommands(inst)

	outcomes := []Outcome{runAMC(set)}

	if inst.Alpha == 1 {
		outcomes = append(outcomes, runKowalik(inst), runBrodal(inst, p.OutdegBound))
	}

	return Result{Instance: inst, Outcomes: outcomes}
}

func runAMC(set *intervalset.Set) Outcome {
	solver := amc.New(set)
	peak := solver.Run()

	return Outcome{Strategy: StrategyAMC, MaxOutdegree: peak}
}

// runKowalik assumes inst.Alpha == 1, which Run guarantees before
// calling it; Solve's own guard against any other bound should be
// unreachable here.
func runKowalik(inst instance.Instance) Outcome {
	result, err := kowalik.Solve(inst)
	if err != nil {
		panic(errkind.New(errkind.Impossible, op+".runKowalik", err.Error()))
	}

	return Outcome{Strategy: StrategyKowalik, MaxOutdegree: result.MaxOutdegree}
}

// runBrodal assumes inst.Alpha == 1, for the same reason as runKowalik.
func runBrodal(inst instance.Instance, outdegBound int) Outcome {
	_, result, err := brodal.Solve(inst, outdegBound)
	if err != nil {
		panic(errkind.New(errkind.Impossible, op+".runBrodal", err.Error()))
	}

	return Outcome{Strategy: StrategyBrodal, MaxOutdegree: result.MaxOutdegree, Flips: result.Flips}
}
