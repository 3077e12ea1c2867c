// Package testbed provides internal test views for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
	"github.com/go-drift/compose/pkg/semantics"
)

// Counter shows a count that increments on tap and on the '+' key.
func Counter(initial int, onChange func(count int)) core.View {
	return core.Stateful(func() int { return initial }, func(count core.State[int], cx *core.Context) core.View {
		bump := func(cx *core.Context) {
			count.Update(cx, func(n *int) { *n++ })
			if onChange != nil {
				onChange(count.Get(cx))
			}
		}
		return core.OnKey(LayoutBox{
			Label:  strconv.Itoa(count.Get(cx)),
			Width:  120,
			Height: 40,
			Color:  graphics.RGB(0x33, 0x66, 0x99),
			Role:   semantics.RoleButton,
			OnTap:  bump,
		}, func(cx *core.Context, k input.Key) {
			if k.Code == input.KeyCharacter && k.Char == '+' {
				bump(cx)
			}
		})
	})
}
