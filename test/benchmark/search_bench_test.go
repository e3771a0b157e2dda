package benchmark

import (
	"math/rand/v2"
	"testing"

	"github.com/hyperjump/vecscan/internal/config"
	"github.com/hyperjump/vecscan/internal/search"
	"github.com/hyperjump/vecscan/internal/topk"
	"github.com/hyperjump/vecscan/internal/vector"
)

const (
	benchDim   = 384
	benchItems = 10000
)

func benchEngine(b *testing.B) (*search.Engine, []byte, [][]byte) {
	b.Helper()
	cfg := config.Default()
	cfg.Kernel.Dimension = benchDim
	e, err := search.NewEngine(cfg, nil)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewPCG(1, 2))
	random := func() []byte {
		v := make([]vector.Float, benchDim)
		for i := range v {
			v[i] = vector.Float(r.Float64()*2 - 1)
		}
		enc, _ := e.Codec().Encode(v)
		return enc
	}
	coll := make([][]byte, benchItems)
	for i := range coll {
		coll[i] = random()
	}
	return e, random(), coll
}

func BenchmarkEngine_Similarity(b *testing.B) {
	e, q, coll := benchEngine(b)
	b.SetBytes(int64(len(coll) * len(q)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Similarity(q, coll)
	}
}

func BenchmarkEngine_L2Score(b *testing.B) {
	e, q, coll := benchEngine(b)
	b.SetBytes(int64(len(coll) * len(q)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.L2Score(q, coll)
	}
}

func BenchmarkEngine_SimilarityBase64(b *testing.B) {
	e, q, coll := benchEngine(b)
	qv, _ := e.Codec().Decode(q)
	qs, _ := e.Codec().EncodeBase64(qv)
	texts := make([]string, len(coll))
	for i, item := range coll {
		v, _ := e.Codec().Decode(item)
		texts[i], _ = e.Codec().EncodeBase64(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.SimilarityBase64(qs, texts)
	}
}

func BenchmarkEngine_SimilarityParallel(b *testing.B) {
	e, q, coll := benchEngine(b)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = e.Similarity(q, coll)
		}
	})
}

func BenchmarkTopK_Indices(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	scores := make([]vector.Float, 100000)
	for i := range scores {
		scores[i] = vector.Float(r.Float64())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = topk.Indices(scores, 10)
	}
}
