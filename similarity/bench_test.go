package similarity_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/perron/matrix"
	"github.com/katalvlaran/perron/similarity"
)

var sinkResult *similarity.Result

func BenchmarkRun_RandomPositive(b *testing.B) {
	for _, n := range []int{32, 128, 512} {
		m, err := matrix.NewRandomPositive(n, rand.New(rand.NewSource(int64(n))))
		if err != nil {
			b.Fatal(err)
		}
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := similarity.Run(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}
