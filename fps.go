package strokedtext

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefreshInterval is how often the FPS widget rewrites its text, in seconds.
const fpsRefreshInterval = 0.5

// NewFPSWidget spawns a small stroked text in the top-left corner that shows
// the current FPS and TPS, refreshed every half second.
func NewFPSWidget(s *Scene) NodeID {
	id := s.Spawn(NewBundle(DefaultStrokedText()).
		WithText("FPS: -\nTPS: -").
		WithFontSize(14).
		WithAnchor(AnchorTopLeft).
		WithTransform(FromTranslation(6, 4, 1000)))

	var elapsed float64
	s.AddSystem(func(s *Scene) {
		elapsed += s.DeltaTime()
		if elapsed < fpsRefreshInterval {
			return
		}
		elapsed = 0
		label := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		_ = s.MutateStrokedText(id, func(st *StrokedText) { st.Text = label })
	})
	return id
}
