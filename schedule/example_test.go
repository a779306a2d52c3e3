package schedule_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ising/schedule"
)

// ExampleLinear prints a five-point linear schedule.
func ExampleLinear() {
	s, _ := schedule.Linear(0, 1, 100, 5)
	for _, p := range s.Points() {
		fmt.Printf("beta=%.2f steps=%d\n", p.Beta, p.Steps)
	}
	fmt.Println("total:", s.TotalSteps())
	// Output:
	// beta=0.00 steps=100
	// beta=0.25 steps=100
	// beta=0.50 steps=100
	// beta=0.75 steps=100
	// beta=1.00 steps=100
	// total: 500
}

// ExampleRun drives a scripted engine whose energy drops by one per step.
func ExampleRun() {
	s, _ := schedule.New(schedule.Point{Beta: 0.5, Steps: 2}, schedule.Point{Beta: 3, Steps: 1})
	res, _ := schedule.Run(context.Background(), &recorder{}, s, 0)
	fmt.Println(res.Steps, res.Trace)
	// Output:
	// 3 [{0.5 -2} {3 -3}]
}
