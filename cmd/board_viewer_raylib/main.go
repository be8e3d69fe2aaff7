// cmd/board_viewer_raylib/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	game "go-hex-tiles/internal/app"
	"go-hex-tiles/internal/config"
	"go-hex-tiles/internal/utils"
	"go-hex-tiles/pkg/anim"
	"go-hex-tiles/pkg/hexmap"
)

const (
	hexSizeRender = 10.0
	tileHeight    = 2.0
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

func worldPos(p anim.Pose) rl.Vector3 {
	return rl.NewVector3(float32(p.X*hexSizeRender), 0, float32(p.Y*hexSizeRender))
}

// drawTile рисует гекс-призму и по шарику на каждом соединяемом ребре.
func drawTile(tile hexmap.HexTile, pose anim.Pose, body rl.Color) {
	center := worldPos(pose)
	radius := float32(hexSizeRender * 0.95 * pose.Scale)
	rl.DrawCylinder(center, radius, radius, tileHeight, 6, body)
	rl.DrawCylinderWires(center, radius, radius, tileHeight, 6, rl.DarkGray)

	angle := pose.Degrees() * math.Pi / 180
	for _, e := range tile.ConnectableEdges() {
		a := hexmap.EdgeAngle(e) + angle
		d := hexSizeRender * 0.7 * pose.Scale
		m := rl.NewVector3(center.X+float32(d*math.Cos(a)), tileHeight, center.Z+float32(d*math.Sin(a)))
		rl.DrawSphere(m, float32(hexSizeRender/12), rl.RayWhite)
	}
}

func main() {
	configPath := flag.String("config", os.Getenv(config.ConfigPathEnv), "path to YAML config")
	period := flag.Duration("period", 600*time.Millisecond, "time between automatic placements")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	opts, err := game.OptionsFromConfig(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	session, err := game.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(cfg.Tiles.Seed)

	// --- Инициализация ---
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Raylib Board Viewer | Q/E - Rotate, Mouse Wheel - Change Angle")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(80, 180, 180)
	topDownPos := rl.NewVector3(0, 400, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	lastStep := time.Now()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		now := time.Now()

		// Вращение
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = float32(math.Max(0, math.Min(0.99, float64(cameraAngleT+wheel*0.05))))
		}
		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		if !session.Over() && now.Sub(lastStep) >= *period {
			if _, err := session.AutoStep(rng); err != nil {
				logger.Warn("Auto step failed", "error", err)
			}
			lastStep = now
		}
		session.Update(now)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(10, 10, 20, 255))
		rl.BeginMode3D(camera)

		for _, h := range session.Frontier() {
			x, y := h.ToCartesian()
			pos := rl.NewVector3(float32(x*hexSizeRender), 0, float32(y*hexSizeRender))
			r := float32(hexSizeRender * 0.95)
			rl.DrawCylinderWires(pos, r, r, 0.2, 6, rl.NewColor(90, 90, 120, 255))
		}
		for _, t := range session.Board().Tiles() {
			id, _ := t.Handle.(game.TileID)
			pose, _ := session.Pose(id)
			drawTile(t.Tile, pose, rl.NewColor(100, 140, 110, 255))
		}

		rl.EndMode3D()
		rl.DrawText("Placed: "+strconv.Itoa(session.Placed()), 10, 10, 20, rl.RayWhite)
		if session.Over() {
			rl.DrawText("Board closed", 10, 36, 20, rl.Gold)
		}
		rl.EndDrawing()
	}
}
