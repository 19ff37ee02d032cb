package tests

import (
	"testing"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/isotest"
)

func BenchmarkResultEmpty(b *testing.B) {
	p := isolation.New(isolation.Config{})
	ms := p.Actions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, e := p.Result(ms[i%len(ms)]); e != nil {
			b.Fatal(e)
		}
	}
}

func BenchmarkActionsMidgame(b *testing.B) {
	p := isotest.Position("f5 a1 g7 c2 e8 e3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Actions()
	}
}

func benchmarkSearch(b *testing.B, depth int, parallel bool) {
	p := ai.View(isotest.Position("f5 a1 g7 c2"))
	e := ai.Evaluator{Evaluate: ai.EvaluateMobilityDistance, Parallel: parallel}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var st ai.Stats
		if _, _, err := e.Search(p, depth, &st); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch3(b *testing.B)         { benchmarkSearch(b, 3, false) }
func BenchmarkSearch5(b *testing.B)         { benchmarkSearch(b, 5, false) }
func BenchmarkSearch5Parallel(b *testing.B) { benchmarkSearch(b, 5, true) }

func BenchmarkEvaluatePartition(b *testing.B) {
	p := ai.View(isotest.Position("f5 a1 g7 c2 e8 e3"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ai.EvaluateMobilityPartition(p, isolation.Player1)
	}
}
