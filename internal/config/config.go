// Package config handles demo configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	Physics  PhysicsConfig  `yaml:"physics"`
	World    WorldConfig    `yaml:"world"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec3 is a YAML-friendly triple.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// PlayerConfig holds locomotion tuning and the character asset.
type PlayerConfig struct {
	Model        string  `yaml:"model"`
	ModelScale   float32 `yaml:"model_scale"`
	WalkSpeed    float32 `yaml:"walk_speed"`
	RunSpeed     float32 `yaml:"run_speed"`
	MoveFade     float64 `yaml:"move_fade"`     // seconds, idle -> walk/run
	IdleFade     float64 `yaml:"idle_fade"`     // seconds, walk/run -> idle
	YawSmoothing float32 `yaml:"yaw_smoothing"` // lerp factor per frame
	Spawn        Vec3    `yaml:"spawn"`

	CapsuleHalfHeight float32 `yaml:"capsule_half_height"`
	CapsuleRadius     float32 `yaml:"capsule_radius"`
}

// CameraConfig holds follow camera tuning.
type CameraConfig struct {
	Distance           float32 `yaml:"distance"`
	Height             float32 `yaml:"height"`
	LookAtHeight       float32 `yaml:"look_at_height"`
	PositionSmoothness float32 `yaml:"position_smoothness"`
	OrbitSmoothness    float32 `yaml:"orbit_smoothness"`
	FOV                float32 `yaml:"fov"` // degrees
	Near               float32 `yaml:"near"`
	Far                float32 `yaml:"far"`
	Start              Vec3    `yaml:"start"`
}

// PhysicsConfig holds simulation settings.
type PhysicsConfig struct {
	Gravity  Vec3    `yaml:"gravity"`
	Timestep float64 `yaml:"timestep"`
	Debug    bool    `yaml:"debug"` // collider wireframe on at startup
}

// WorldConfig holds static world props.
type WorldConfig struct {
	GroundHalfExtents Vec3    `yaml:"ground_half_extents"`
	Village           string  `yaml:"village"`
	VillageScale      float32 `yaml:"village_scale"`
}

// AssetsConfig holds asset loading settings.
type AssetsConfig struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
	Watch   bool   `yaml:"watch"` // reload tuning when the config file changes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Player: PlayerConfig{
			Model:             "models/man.glb",
			ModelScale:        0.05,
			WalkSpeed:         6,
			RunSpeed:          12,
			MoveFade:          0.2,
			IdleFade:          0.5,
			YawSmoothing:      0.1,
			Spawn:             Vec3{0, 6, 0},
			CapsuleHalfHeight: 0.5,
			CapsuleRadius:     0.5,
		},
		Camera: CameraConfig{
			Distance:           15,
			Height:             8,
			LookAtHeight:       1,
			PositionSmoothness: 0.6,
			OrbitSmoothness:    0.01,
			FOV:                50,
			Near:               0.1,
			Far:                1000,
			Start:              Vec3{0, 10, -15},
		},
		Physics: PhysicsConfig{
			Gravity:  Vec3{0, -9.81, 0},
			Timestep: 1.0 / 60.0,
			Debug:    true,
		},
		World: WorldConfig{
			GroundHalfExtents: Vec3{59, 0.1, 46},
			Village:           "models/medieval_village.glb",
			VillageScale:      0.1,
		},
		Assets: AssetsConfig{
			Dir:     "public",
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
