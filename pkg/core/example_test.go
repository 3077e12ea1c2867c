package core_test

import (
	"fmt"
	"os"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
)

func ExampleMap() {
	volume := 5
	view := core.Map(volume,
		func(v int, _ *core.Context) { volume = v },
		func(s core.State[int], _ *core.Context) core.View {
			return core.OnKey(core.Empty(), func(cx *core.Context, k input.Key) {
				if k.Code == input.KeyArrowUp {
					s.Update(cx, func(n *int) { *n *= 2 })
				}
			})
		},
	)

	cx := core.NewContext()
	rec := &graphics.PictureRecorder{}
	view.Process(input.KeyEvent{Key: input.Key{Code: input.KeyArrowUp}}, core.ViewID{}, cx, rec.BeginRecording(graphics.Size{}))
	fmt.Println(volume)
	// Output: 10
}

func ExampleContext_Printf() {
	cx := core.NewContext(core.WithOutput(os.Stdout))
	core.Stateful(func() int { return 0 }, func(core.State[int], *core.Context) core.View {
		return core.OnKey(core.Empty(), nil)
	}).Print(core.ViewID{}, cx)
	// Output:
	// State {
	//   Key {
	//     EmptyView
	//   }
	// }
}

func ExampleViewID() {
	id := core.ViewID{}.Child(0).Key("sidebar").Child(2)
	fmt.Println(id)
	fmt.Println(id.Depth())
	// Output:
	// /[0]/"sidebar"/[2]
	// 3
}
