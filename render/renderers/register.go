package renderers

import "github.com/lixenwraith/drone-runner/render"

// RegisterAll installs the terminal render pipeline
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewStarfieldRenderer(), render.PriorityBackground)
	o.Register(NewBuildingsRenderer(), render.PriorityBuildings)
	o.Register(NewDroneRenderer(), render.PriorityDrone)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(NewDebugRenderer(), render.PriorityDebug)
}
