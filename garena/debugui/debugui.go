// Package debugui provides a Dear ImGui inspector for arena state. It renders
// the raw slot layout of an arena — occupancy, generations, and the free-list
// chain — which makes handle-reuse bugs visible at a glance. Pair it with the
// debugui/ebiten backend to draw the inspector inside an Ebiten game loop.
package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/JuergenFranziskus/typed-garena/garena"
)

// maxFreeChain caps how many links of the free list are printed before the
// chain is elided.
const maxFreeChain = 16

// SlotViewer renders one arena's slots as an ImGui window. Create it once and
// call Render every frame while the window should be visible.
type SlotViewer[T any] struct {
	arena    *garena.Arena[T]
	title    string
	format   func(*T) string
	showFree bool
}

// NewSlotViewer creates a viewer for arena with the given window title.
func NewSlotViewer[T any](arena *garena.Arena[T], title string) *SlotViewer[T] {
	return &SlotViewer[T]{
		arena:    arena,
		title:    title,
		format:   func(v *T) string { return fmt.Sprintf("%v", *v) },
		showFree: true,
	}
}

// SetFormatter overrides how occupied slots preview their value. The default
// is fmt's %v.
func (sv *SlotViewer[T]) SetFormatter(format func(*T) string) {
	sv.format = format
}

// Render draws the inspector window for the current frame.
func (sv *SlotViewer[T]) Render() {
	if !imgui.BeginV(sv.title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	numSlots := sv.arena.NumSlots()
	imgui.Text(fmt.Sprintf("live: %d   slots: %d   free: %d",
		sv.arena.Len(), numSlots, numSlots-sv.arena.Len()))
	imgui.Text("free list: " + sv.freeChain())
	imgui.Checkbox("Show free slots", &sv.showFree)
	imgui.Separator()

	// Values are only reachable through handles, so collect previews for
	// the occupied slots in one pass before walking the raw layout.
	previews := make(map[uint32]string, sv.arena.Len())
	for id, v := range sv.arena.All() {
		previews[id.Index()] = sv.format(v)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SlotTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for i := 0; i < numSlots; i++ {
			info := sv.arena.SlotAt(i)
			if !info.Occupied && !sv.showFree {
				continue
			}

			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", i))

			imgui.TableNextColumn()
			if info.Occupied {
				imgui.Text("occupied")
			} else if info.NextFree >= 0 {
				imgui.Text(fmt.Sprintf("free -> %d", info.NextFree))
			} else {
				imgui.Text("free (tail)")
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Generation))

			imgui.TableNextColumn()
			if info.Occupied {
				imgui.Text(previews[uint32(i)])
			} else {
				imgui.Text("-")
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// freeChain formats the free list head-first, eliding long chains.
func (sv *SlotViewer[T]) freeChain() string {
	head := sv.arena.FreeHead()
	if head < 0 {
		return "empty"
	}

	var b strings.Builder
	links := 0
	for i := head; i >= 0; i = sv.arena.SlotAt(i).NextFree {
		if links == maxFreeChain {
			b.WriteString("-> ...")
			break
		}
		if links > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%d", i)
		links++
	}
	return b.String()
}
