package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const (
	collisionTypeParticipant cp.CollisionType = iota + 1
	collisionTypeBoss
	collisionTypeProjectile
	collisionTypeSolid
	collisionTypeCeiling
)

const groundGraceFrames = 6

const defaultGravity = 0.4

type PhysicsSystem struct {
	space         *cp.Space
	gravity       float64
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	contacts map[ecs.Entity]*contactState

	// valid while the space steps
	world *ecs.World
	hits  []queuedHit
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	shapes  []*cp.Shape
	static  bool
	gravity float64
	scale   float64
}

type contactState struct {
	grounded    bool
	groundGrace int
}

type queuedHit struct {
	target ecs.Entity
	hit    component.HitEvent
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	if gravity == 0 {
		gravity = defaultGravity
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:    space,
		gravity:  gravity,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		contacts: make(map[ecs.Entity]*contactState),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.resetContacts(w)

	ps.world = w
	ps.space.Step(1.0)
	ps.world = nil

	ps.syncTransforms(w)
	ps.flushContacts(w)
	ps.flushHits(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	ground := ps.space.NewCollisionHandler(collisionTypeParticipant, collisionTypeSolid)
	ground.UserData = ps
	ground.PreSolveFunc = participantGroundPreSolve
	ceiling := ps.space.NewCollisionHandler(collisionTypeParticipant, collisionTypeCeiling)
	ceiling.UserData = ps
	ceiling.PreSolveFunc = participantGroundPreSolve

	crowd := ps.space.NewCollisionHandler(collisionTypeParticipant, collisionTypeParticipant)
	crowd.BeginFunc = func(*cp.Arbiter, *cp.Space, interface{}) bool { return false }

	contact := ps.space.NewCollisionHandler(collisionTypeBoss, collisionTypeParticipant)
	contact.UserData = ps
	contact.PreSolveFunc = bossContactPreSolve

	hitParticipant := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeParticipant)
	hitParticipant.UserData = ps
	hitParticipant.BeginFunc = projectileBegin(hex.SideParticipant)

	hitBoss := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeBoss)
	hitBoss.UserData = ps
	hitBoss.BeginFunc = projectileBegin(hex.SideBoss)

	hitSolid := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeSolid)
	hitSolid.UserData = ps
	hitSolid.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.world == nil {
			return false
		}
		a, _ := arb.Shapes()
		if proj, ok := ecs.Get(sys.world, sys.shapes[a], component.ProjectileComponent.Kind()); ok {
			proj.Spent = true
		}
		return false
	}

	// meteors enter from above the arena
	passCeiling := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeCeiling)
	passCeiling.BeginFunc = func(*cp.Arbiter, *cp.Space, interface{}) bool { return false }

	ps.handlersReady = true
}

// participantGroundPreSolve marks a participant grounded when the surface lies
// in the direction its gravity pulls.
func participantGroundPreSolve(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil {
		return true
	}
	a, _ := arb.Shapes()
	e, ok := sys.shapes[a]
	if !ok {
		return true
	}
	info := sys.entities[e]
	if info == nil {
		return true
	}
	down := 1.0
	if info.gravity < 0 {
		down = -1
	}
	// normal points from the participant toward the surface
	n := arb.Normal()
	if n.Y*down <= 0.5 {
		return true
	}
	st := sys.contacts[e]
	if st == nil {
		st = &contactState{}
		sys.contacts[e] = st
	}
	st.grounded = true
	st.groundGrace = groundGraceFrames
	return true
}

func bossContactPreSolve(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil || sys.world == nil {
		return true
	}
	a, b := arb.Shapes()
	bossEnt, participantEnt := sys.shapes[a], sys.shapes[b]
	boss, ok := ecs.Get(sys.world, bossEnt, component.BossComponent.Kind())
	if !ok || boss.ContactDamage <= 0 {
		return true
	}
	if h, ok := ecs.Get(sys.world, bossEnt, component.HealthComponent.Kind()); ok && h.Dead {
		return true
	}
	if !participantAlive(sys.world, participantEnt) || ecs.Has(sys.world, participantEnt, component.InvulnerableComponent.Kind()) {
		return true
	}
	name := ""
	if p, ok := ecs.Get(sys.world, participantEnt, component.ParticipantComponent.Kind()); ok {
		name = p.Name
	}
	sys.hits = append(sys.hits, queuedHit{target: participantEnt, hit: component.HitEvent{
		Source: uint64(bossEnt),
		Hit: hex.Hit{
			Amount: float64(boss.ContactDamage),
			Class:  hex.DamageMelee,
			From:   hex.SideBoss,
			FromID: hex.NoParticipant,
			To:     hex.SideParticipant,
		},
		Reason: fmt.Sprintf("%s was crushed by %s.", name, boss.Name),
	}})
	return true
}

func projectileBegin(to hex.Side) cp.CollisionBeginFunc {
	return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.world == nil {
			return false
		}
		a, b := arb.Shapes()
		projEnt, targetEnt := sys.shapes[a], sys.shapes[b]
		proj, ok := ecs.Get(sys.world, projEnt, component.ProjectileComponent.Kind())
		if !ok || proj.Spent {
			return false
		}
		if uint64(targetEnt) == proj.Owner {
			return false
		}

		switch to {
		case hex.SideParticipant:
			if !proj.HitsParticipants || !participantAlive(sys.world, targetEnt) {
				return false
			}
		case hex.SideBoss:
			if !proj.HitsBosses {
				return false
			}
			if h, ok := ecs.Get(sys.world, targetEnt, component.HealthComponent.Kind()); ok && h.Dead {
				return false
			}
		}

		proj.Spent = true
		sys.hits = append(sys.hits, queuedHit{target: targetEnt, hit: component.HitEvent{
			Source: proj.Owner,
			Hit: hex.Hit{
				Amount:     float64(proj.Damage),
				Class:      proj.Class,
				Projectile: true,
				From:       proj.From,
				FromID:     proj.OwnerSlot,
				To:         to,
			},
			Reason: projectileReason(sys.world, targetEnt, proj.From),
		}})
		return false
	}
}

func projectileReason(w *ecs.World, target ecs.Entity, from hex.Side) string {
	p, ok := ecs.Get(w, target, component.ParticipantComponent.Kind())
	if !ok {
		return ""
	}
	if from == hex.SideHazard {
		return fmt.Sprintf("%s was flattened by a meteor.", p.Name)
	}
	return fmt.Sprintf("%s was shot down.", p.Name)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		gravity := 1.0
		if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gravity = g.Effective()
		}

		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(w, e, transform, bodyComp)
			if info == nil {
				return
			}
			ps.entities[e] = info
		} else if !info.static && transform.Scale() != info.scale {
			ps.rebuildShape(w, e, info, transform, bodyComp)
		}
		info.gravity = gravity
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
		bodyComp.Scale = info.scale
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	info := &bodyInfo{static: bodyComp.Static, gravity: 1, scale: transform.Scale()}

	if bodyComp.Static {
		width, height := shapeSize(bodyComp, 1)
		bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.body = ps.space.StaticBody
		info.shape = shape
		info.shapes = []*cp.Shape{shape}
		ps.shapes[shape] = e
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// fighters stay upright
	moment := cp.INFINITY
	if bodyComp.Radius > 0 {
		moment = cp.MomentForCircle(mass, 0, bodyComp.Radius*info.scale, cp.Vector{})
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetAngularVelocity(0)
	if proj, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
		body.SetVelocity(proj.VX, proj.VY)
	}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(info.gravity), damping, dt)
	})
	ps.space.AddBody(body)
	info.body = body

	ps.attachShape(w, e, info, bodyComp)
	return info
}

func (ps *PhysicsSystem) attachShape(w *ecs.World, e ecs.Entity, info *bodyInfo, bodyComp *component.PhysicsBody) {
	var shape *cp.Shape
	if bodyComp.Radius > 0 {
		shape = cp.NewCircle(info.body, bodyComp.Radius*info.scale, cp.Vector{})
	} else {
		width, height := shapeSize(bodyComp, info.scale)
		shape = cp.NewBox(info.body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)

	switch {
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		shape.SetCollisionType(collisionTypeProjectile)
	case ecs.Has(w, e, component.ParticipantComponent.Kind()):
		shape.SetCollisionType(collisionTypeParticipant)
	case ecs.Has(w, e, component.BossComponent.Kind()):
		shape.SetCollisionType(collisionTypeBoss)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}

	ps.space.AddShape(shape)
	info.shape = shape
	info.shapes = []*cp.Shape{shape}
	ps.shapes[shape] = e
}

// rebuildShape swaps the collider for one matching the new transform scale.
func (ps *PhysicsSystem) rebuildShape(w *ecs.World, e ecs.Entity, info *bodyInfo, transform *component.Transform, bodyComp *component.PhysicsBody) {
	for _, shape := range info.shapes {
		ps.space.RemoveShape(shape)
		delete(ps.shapes, shape)
	}
	info.scale = transform.Scale()
	ps.attachShape(w, e, info, bodyComp)
}

func shapeSize(bodyComp *component.PhysicsBody, scale float64) (float64, float64) {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
	}
	return width * scale, height * scale
}

// syncWorldBounds closes the arena with static segments. The top edge is a
// ceiling participants can land on when their gravity is inverted.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.FloorY <= 0 {
		return
	}

	worldW, floor := bounds.Width, bounds.FloorY
	segments := []struct {
		a, b cp.Vector
		kind cp.CollisionType
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}, kind: collisionTypeCeiling},
		{a: cp.Vector{X: 0, Y: floor}, b: cp.Vector{X: worldW, Y: floor}, kind: collisionTypeSolid},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: floor}, kind: collisionTypeSolid},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: floor}, kind: collisionTypeSolid},
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody, gravity: 1, scale: 1}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(seg.kind)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) resetContacts(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{})
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision) {
		seen[e] = struct{}{}
		st := ps.contacts[e]
		if st == nil {
			st = &contactState{}
			ps.contacts[e] = st
		}
		st.groundGrace = pc.GroundGrace
		if st.groundGrace > 0 {
			st.groundGrace--
		}
		st.grounded = false
	})
	for e := range ps.contacts {
		if _, ok := seen[e]; !ok {
			delete(ps.contacts, e)
		}
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, st := range ps.contacts {
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			continue
		}
		pc.Grounded = st.grounded
		pc.GroundGrace = st.groundGrace
		_ = ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), pc)
	}
}

// flushHits hands the hits collected during the step to DamageSystem.
func (ps *PhysicsSystem) flushHits(w *ecs.World) {
	for _, qh := range ps.hits {
		queueHit(w, qh.target, qh.hit)
	}
	ps.hits = ps.hits[:0]
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
			delete(ps.shapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}
}

// queueHit appends a hit to the target's pending damage.
func queueHit(w *ecs.World, target ecs.Entity, hit component.HitEvent) {
	if !ecs.IsAlive(w, target) {
		return
	}
	pd, ok := ecs.Get(w, target, component.PendingDamageComponent.Kind())
	if !ok {
		pd = &component.PendingDamage{}
	}
	pd.Hits = append(pd.Hits, hit)
	_ = ecs.Add(w, target, component.PendingDamageComponent.Kind(), pd)
}
