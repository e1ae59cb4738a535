package scene

// A Scene bundles the world to be rendered with the camera that views it.
type Scene struct {
	Camera *Camera
	World  *World
}

// Create a scene with an empty world and no camera.
func NewScene() *Scene {
	return &Scene{
		World: NewWorld(),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}
