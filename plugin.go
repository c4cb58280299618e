package strokedtext

// Plugin installs stroked text synchronization on a Scene.
type Plugin struct{}

// Build registers SyncSystem on s. Building the plugin twice on the same
// scene registers it once.
func (Plugin) Build(s *Scene) {
	if s.syncInstalled {
		return
	}
	s.syncInstalled = true
	s.AddSystem(SyncSystem)
}

// SyncSystem synchronizes every changed declaration in s. Failures are logged
// and retried on the next tick; the joined error of the pass is passed to
// s.OnSyncError when set.
func SyncSystem(s *Scene) {
	syncScene(s, s)
}

func syncScene(s *Scene, h Host) {
	if err := Sync(h); err != nil && s.OnSyncError != nil {
		s.OnSyncError(err)
	}
}
