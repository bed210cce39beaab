package device_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/perron/device"
	"github.com/stretchr/testify/require"
)

func TestNew_Options(t *testing.T) {
	d, err := device.New(device.WithWorkers(3), device.WithLanes(8))
	require.NoError(t, err)
	require.Equal(t, 3, d.Workers())
	require.Equal(t, 8, d.Lanes())
	require.Contains(t, d.Name(), "3 workers")

	auto, err := device.New()
	require.NoError(t, err)
	require.Equal(t, runtime.GOMAXPROCS(0), auto.Workers())
	lanes := auto.Lanes()
	require.True(t, lanes > 0 && lanes <= device.MaxLanes && lanes&(lanes-1) == 0)

	for _, opt := range []device.Option{
		device.WithWorkers(-1),
		device.WithLanes(3),
		device.WithLanes(32),
		device.WithLanes(-2),
	} {
		_, err = device.New(opt)
		require.ErrorIs(t, err, device.ErrOptionViolation)
	}
}

func TestFeatures_Lanes(t *testing.T) {
	require.Equal(t, 8, device.Features{HasAVX512: true, HasAVX2: true}.Lanes())
	require.Equal(t, 4, device.Features{HasAVX2: true}.Lanes())
	require.Equal(t, 2, device.Features{HasNEON: true}.Lanes())
	require.Equal(t, 4, device.Features{}.Lanes())
	require.Equal(t, "amd64+avx2", device.Features{Architecture: "amd64", HasAVX2: true, HasSSE2: true}.String())
}

func TestQueue_DependenciesOrderSubmissions(t *testing.T) {
	q := device.NewQueue(nil)

	var stage atomic.Int32
	release := make(chan struct{})
	first := q.Submit("first", func() {
		<-release
		stage.Store(1)
	})
	var seen int32 = -1
	second := q.Submit("second", func() { seen = stage.Load() }, first, nil)

	select {
	case <-second.Done():
		t.Fatal("dependent submission completed before its dependency")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	second.Wait()
	require.Equal(t, int32(1), seen)
	require.Equal(t, "second", second.Name())
	require.Equal(t, uint64(2), q.Launches())
	q.Wait()
}

func TestQueue_ParallelForCoversEveryGroupOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 7, 64} {
		d, err := device.New(device.WithWorkers(workers))
		require.NoError(t, err)
		q := device.NewQueue(d)

		r, err := device.Range1D(1000, 8)
		require.NoError(t, err)
		r = r.WithLocalMem(2)

		counts := make([]atomic.Int32, 1000)
		var badMem atomic.Int32
		q.ParallelFor("cover", r, func(g *device.Group) {
			if len(g.LocalMem()) != 2 {
				badMem.Add(1)
			}
			for l := 0; l < g.Size(); l++ {
				_, col := g.GlobalID(l)
				counts[col].Add(1)
			}
		}).Wait()
		require.Zero(t, badMem.Load())
		for i := range counts {
			require.Equalf(t, int32(1), counts[i].Load(), "workers=%d item %d", workers, i)
		}
	}
}

func TestEvent_CompletedAndDuration(t *testing.T) {
	e := device.Completed("noop")
	e.Wait()
	require.Equal(t, time.Duration(0), e.Duration())

	var nilEvent *device.Event
	nilEvent.Wait()
	device.WaitAll(nil, e)

	q := device.NewQueue(nil)
	slow := q.Submit("sleep", func() { time.Sleep(5 * time.Millisecond) })
	require.Equal(t, time.Duration(0), slow.Duration()) // still sleeping
	slow.Wait()
	require.GreaterOrEqual(t, slow.Duration(), 5*time.Millisecond)
}
