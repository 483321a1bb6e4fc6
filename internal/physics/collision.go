package physics

import (
	"cubejam/internal/components"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// body is a dynamic object taking part in this step's pair pass.
type body struct {
	obj *engine.GameObject
	rb  *components.Rigidbody
	col components.Collider
}

// solidBodies returns the dynamic bodies the solver moves: active,
// unparented, not kinematic and with a collider.
func (p *PhysicsWorld) solidBodies() []body {
	out := make([]body, 0, len(p.Objects))
	for _, obj := range p.Objects {
		if !obj.Active || obj.Parent != nil {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsKinematic {
			continue
		}
		col := engine.FindComponent[components.Collider](obj)
		if col == nil {
			continue
		}
		out = append(out, body{obj: obj, rb: rb, col: col})
	}
	return out
}

// resolveBodies separates every overlapping pair of dynamic bodies using
// their world bounds. Pairs where both sides sleep are skipped.
func (p *PhysicsWorld) resolveBodies() {
	bodies := p.solidBodies()
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if a.rb.IsSleeping && b.rb.IsSleeping {
				continue
			}
			if p.resolveCollision(a, b) {
				p.resolveStatics(a.obj, a.rb)
				p.resolveStatics(b.obj, b.rb)
			}
		}
	}
}

// resolveCollision pushes a and b apart, split by mass, and cancels the
// velocity that drove them together. Reports whether they overlapped.
func (p *PhysicsWorld) resolveCollision(a, b body) bool {
	alo, ahi := a.col.Bounds()
	blo, bhi := b.col.Bounds()
	pushOut := AABB{Min: alo, Max: ahi}.Resolve(AABB{Min: blo, Max: bhi})
	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return false
	}

	massA, massB := bodyMass(a.rb), bodyMass(b.rb)
	totalMass := massA + massB
	ratioA := massB / totalMass
	ratioB := massA / totalMass

	a.obj.Transform.Position = rl.Vector3Add(a.obj.Transform.Position, rl.Vector3Scale(pushOut, ratioA))
	b.obj.Transform.Position = rl.Vector3Subtract(b.obj.Transform.Position, rl.Vector3Scale(pushOut, ratioB))
	a.rb.Wake()
	b.rb.Wake()

	normal := rl.Vector3Scale(pushOut, 1/pushLen)
	relVel := rl.Vector3Subtract(a.rb.Velocity, b.rb.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal >= 0 {
		return true
	}

	// Inelastic: the pair leaves the contact with a shared normal velocity.
	j := -velAlongNormal / (1/massA + 1/massB)
	impulse := rl.Vector3Scale(normal, j)
	a.rb.Velocity = rl.Vector3Add(a.rb.Velocity, rl.Vector3Scale(impulse, 1/massA))
	b.rb.Velocity = rl.Vector3Subtract(b.rb.Velocity, rl.Vector3Scale(impulse, 1/massB))
	return true
}

func bodyMass(rb *components.Rigidbody) float32 {
	if rb.Mass <= 0 {
		return 1
	}
	return rb.Mass
}
