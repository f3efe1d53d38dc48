package game

import (
	"log/slog"

	"github.com/google/uuid"

	"glyph-snake/game/entity"
	"glyph-snake/game/manager"
	"glyph-snake/game/render"
	"glyph-snake/game/types"
)

// Simulation is what the scheduler drives. Calls must never overlap.
type Simulation interface {
	Tick()
	Key(ev types.KeyEvent)
	Render()
}

// Options configures a Game
type Options struct {
	// UUID names the session in logs and telemetry; empty picks a new one
	UUID        string
	Grid        types.Grid
	MaxSegments int
	BodyGlyph   rune
	FoodGlyph   rune
	Palette     render.Palette
	ScorePos    types.Point

	// Source feeds the food spawner; nil seeds from the clock on first use
	Source   manager.Source
	Drawable func(rune) bool
	Sink     manager.EventSink
	Logger   *slog.Logger
}

// DefaultOptions returns an 80x25 game with a 100 slot body
func DefaultOptions() Options {
	return Options{
		Grid:        types.Grid{Width: types.DefaultWidth, Height: types.DefaultHeight},
		MaxSegments: types.DefaultMaxSegments,
		BodyGlyph:   'o',
		FoodGlyph:   '*',
		Palette:     render.DefaultPalette(),
		Drawable:    types.IsDrawable,
	}
}

// Game is the snake state machine. It is owned by a single goroutine; the
// scheduler serializes Tick and Key.
type Game struct {
	UUID string
	Grid types.Grid

	snake *entity.Snake
	food  entity.Food

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	renderer     *render.Renderer
	drawable     func(rune) bool
	log          *slog.Logger
}

func NewGame(display types.Display, opts Options) *Game {
	if opts.Drawable == nil {
		opts.Drawable = types.IsDrawable
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	gameUUID := opts.UUID
	if gameUUID == "" {
		gameUUID = uuid.New().String()
	}
	renderer := render.NewRenderer(display, opts.Grid, opts.Palette, opts.ScorePos)

	g := &Game{
		UUID:         gameUUID,
		Grid:         opts.Grid,
		snake:        entity.NewSnake(opts.Grid.Center(), opts.MaxSegments, opts.BodyGlyph, opts.Grid.Width),
		foodMgr:      manager.NewFoodManager(opts.Grid, opts.Source, opts.FoodGlyph, renderer),
		collisionMgr: manager.NewCollisionManager(opts.Grid),
		stateMgr:     manager.NewStateManager(opts.Sink),
		renderer:     renderer,
		drawable:     opts.Drawable,
		log:          opts.Logger.With("game", gameUUID),
	}
	g.food = g.foodMgr.Initial()

	return g
}

// Tick advances the head one step and redraws
func (g *Game) Tick() {
	g.stateMgr.AdvanceTick()

	head := g.snake.Head()
	g.renderer.Erase(head)

	velocity := g.snake.Velocity()
	if g.collisionMgr.Blocked(head, velocity) {
		g.log.Debug("head against wall", "x", head.X, "y", head.Y, "heading", g.snake.Heading().String())
	}

	newHead := g.collisionMgr.NextHead(head, velocity)
	// A snake at rest never eats; a moving one eats even when pinned on the food
	if velocity != (types.Point{}) && g.collisionMgr.IsFoodCollision(newHead, g.food.Pos) {
		g.consume(newHead)
	}
	g.snake.MoveHead(newHead)

	g.renderer.Frame(g.View())
}

func (g *Game) consume(at types.Point) {
	grew := g.snake.Grow(at, g.food.Glyph)
	g.food = g.foodMgr.Spawn(g.food)

	score := g.stateMgr.RecordConsume(manager.ConsumeEvent{
		Segments:  g.snake.Used(),
		Head:      at,
		NextFood:  g.food.Pos,
		Saturated: !grew,
	})

	if !grew {
		g.log.Debug("body full, growth dropped", "score", score, "segments", g.snake.Used())
		return
	}
	g.log.Info("food eaten", "score", score, "segments", g.snake.Used(), "x", at.X, "y", at.Y)
}

// Key applies a decoded key event. Arrow keys steer under the axis lock,
// drawable characters become skin glyphs, anything else is ignored.
func (g *Game) Key(ev types.KeyEvent) {
	if h, ok := ev.Heading(); ok {
		if g.snake.Steer(h) {
			g.log.Debug("heading changed", "heading", h.String())
		}
		return
	}
	if ev.IsChar && g.drawable(ev.Char) {
		g.snake.AddSkin(ev.Char)
	}
}

// Render redraws the current state without changing it
func (g *Game) Render() {
	g.renderer.Frame(g.View())
}

// View copies the visual state
func (g *Game) View() render.View {
	return render.View{
		Segments: g.snake.Segments(),
		Food:     g.food,
		Score:    g.stateMgr.GetScore(),
		ShowFood: true,
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() entity.Food {
	return g.food
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) Ticks() int {
	return g.stateMgr.GetTicks()
}

// FoodSpawned counts the foods placed after the initial one
func (g *Game) FoodSpawned() int {
	return g.foodMgr.Spawned()
}

// Dropped counts foods eaten after the body was full
func (g *Game) Dropped() int {
	return g.stateMgr.GetDropped()
}
