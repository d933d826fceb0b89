// Package ebiten provides Dear ImGui backend integration for the Ebiten game
// engine. Use it to draw arena inspectors from the debugui package as an
// overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame before rendering any debugui windows, EndFrame after, and
// Draw from the game's Draw callback.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
