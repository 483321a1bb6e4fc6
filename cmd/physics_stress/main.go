// Headless stress test: loads a scene, spawns extra crates on the cube and
// times physics steps and forward probes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"cubejam/internal/components"
	"cubejam/internal/config"
	"cubejam/internal/engine"
	"cubejam/internal/objects"
	"cubejam/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const stressTag = "stress"

func main() {
	scene := flag.String("scene", "assets/scenes/cube.yaml", "scene file")
	frames := flag.Int("frames", 300, "frames to simulate per run")
	flag.Parse()

	w := world.New(nil)
	if err := w.LoadScene(*scene); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	w.Configure(config.Default())
	w.Start()

	// Dynamic bodies are resolved pairwise, so time grows with the square
	// of the crate count.
	testCounts := []int{10, 50, 100, 250, 500}
	for _, count := range testCounts {
		run(w, count, *frames)
		for _, crate := range w.Scene.FindByTag(stressTag) {
			w.Destroy(crate)
		}
	}
}

func run(w *world.World, count, frames int) {
	rng := rand.New(rand.NewSource(42))
	for i := range count {
		crate := engine.NewGameObject(fmt.Sprintf("Stress_%d", i))
		crate.Tags = []string{stressTag}
		crate.Transform.Position = rl.Vector3{
			X: rng.Float32()*9 - 4.5,
			Y: 5.5 + rng.Float32()*3,
			Z: rng.Float32()*9 - 4.5,
		}
		size := rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
		crate.AddComponent(components.NewBoxCollider(size))
		rb := components.NewRigidbody()
		rb.Friction = 2
		crate.AddComponent(rb)
		crate.AddComponent(objects.NewProp(objects.KindMovable))
		w.SpawnObject(crate)
	}

	const dt = float32(1.0 / 60)
	stepStart := time.Now()
	for range frames {
		w.Update(dt)
	}
	stepTime := time.Since(stepStart) / time.Duration(frames)

	probeStart := time.Now()
	hits := 0
	for range frames {
		if _, ok := w.Controller.RaycastForward(); ok {
			hits++
		}
	}
	probeTime := time.Since(probeStart) / time.Duration(frames)

	awake := 0
	for _, obj := range w.Scene.FindByTag(stressTag) {
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil && !rb.IsSleeping {
			awake++
		}
	}

	fmt.Printf("%5d crates: step %10v | probe %8v (%d hits) | %d awake\n",
		count, stepTime.Round(time.Microsecond), probeTime.Round(time.Nanosecond), hits, awake)
}
