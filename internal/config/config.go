// Package config handles configuration loading and management.
package config

// Config holds all simulation and display settings.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Vegetation VegetationConfig `yaml:"vegetation"`
	Tree       TreeConfig       `yaml:"tree"`
	Flight     FlightConfig     `yaml:"flight"`
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WorldConfig holds world-level generation settings.
type WorldConfig struct {
	Seed       int64   `yaml:"seed"`
	Size       float32 `yaml:"size"`        // World extent along X and Z
	WaterLevel float32 `yaml:"water_level"` // Elevation of the water plane
}

// TerrainConfig holds height field and mesh settings.
type TerrainConfig struct {
	Octaves        int     `yaml:"octaves"`
	Lacunarity     float32 `yaml:"lacunarity"`
	Persistence    float32 `yaml:"persistence"`
	Frequency      float32 `yaml:"frequency"` // Base noise frequency in world units
	MaxElevation   float32 `yaml:"max_elevation"`
	Exponent       float32 `yaml:"exponent"` // Sharpens peaks, flattens valleys
	BasinRadius    float32 `yaml:"basin_radius"`
	BasinBlend     float32 `yaml:"basin_blend"` // Transition band width beyond the radius
	BasinFloor     float32 `yaml:"basin_floor"`
	FloorClamp     float32 `yaml:"floor_clamp"`
	GridResolution int     `yaml:"grid_resolution"` // Vertices per side of the mesh grid
}

// VegetationConfig holds scatter placement settings.
type VegetationConfig struct {
	InstanceCount int     `yaml:"instance_count"`
	MaxAttempts   int     `yaml:"max_attempts"` // Placement attempts per instance
	MinScale      float32 `yaml:"min_scale"`
	MaxScale      float32 `yaml:"max_scale"`
	MinElevation  float32 `yaml:"min_elevation"` // Reject placements below this height
	MaxElevation  float32 `yaml:"max_elevation"` // Reject placements at or above this height
	MaxSlope      float32 `yaml:"max_slope"`     // Reject placements steeper than this
}

// TreeConfig holds recursive branch generation settings.
type TreeConfig struct {
	MaxDepth     int     `yaml:"max_depth"`
	BranchChance float32 `yaml:"branch_chance"` // Probability of a third child branch
	ShrinkFactor float32 `yaml:"shrink_factor"` // Length and radius falloff per level
	TrunkLength  float32 `yaml:"trunk_length"`
	TrunkRadius  float32 `yaml:"trunk_radius"`
	SpreadAngle  float32 `yaml:"spread_angle"` // Max perturbation angle in radians
	WindLean     float32 `yaml:"wind_lean"`    // Constant lateral bias applied to branches
	LeafSize     float32 `yaml:"leaf_size"`
}

// FlightConfig holds flight model and collision settings.
type FlightConfig struct {
	PitchGain     float32 `yaml:"pitch_gain"` // Target pitch per unit of vertical input
	RollGain      float32 `yaml:"roll_gain"`  // Target roll per unit of lateral input
	Smoothing     float32 `yaml:"smoothing"`  // Exponential approach rate toward targets
	YawFactor     float32 `yaml:"yaw_factor"` // Yaw rate per unit of roll
	BaseSpeed     float32 `yaml:"base_speed"`
	SpeedGain     float32 `yaml:"speed_gain"` // Speed change per unit of pitch
	MinSpeed      float32 `yaml:"min_speed"`
	MaxSpeed      float32 `yaml:"max_speed"`
	Clearance     float32 `yaml:"clearance"`      // Minimum height above terrain or water
	ClimbRecovery float32 `yaml:"climb_recovery"` // Upward pitch applied after a collision
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:       1,
			Size:       400,
			WaterLevel: 0.4,
		},
		Terrain: TerrainConfig{
			Octaves:        5,
			Lacunarity:     2.0,
			Persistence:    0.5,
			Frequency:      0.012,
			MaxElevation:   28,
			Exponent:       2.2,
			BasinRadius:    60,
			BasinBlend:     45,
			BasinFloor:     0.15,
			FloorClamp:     0,
			GridResolution: 200,
		},
		Vegetation: VegetationConfig{
			InstanceCount: 600,
			MaxAttempts:   12,
			MinScale:      0.6,
			MaxScale:      1.4,
			MinElevation:  1.2,
			MaxElevation:  12,
			MaxSlope:      0.7,
		},
		Tree: TreeConfig{
			MaxDepth:     5,
			BranchChance: 0.35,
			ShrinkFactor: 0.72,
			TrunkLength:  3.2,
			TrunkRadius:  0.28,
			SpreadAngle:  0.55,
			WindLean:     0.08,
			LeafSize:     1.1,
		},
		Flight: FlightConfig{
			PitchGain:     0.9,
			RollGain:      1.1,
			Smoothing:     4.0,
			YawFactor:     1.3,
			BaseSpeed:     18,
			SpeedGain:     14,
			MinSpeed:      8,
			MaxSpeed:      42,
			Clearance:     1.5,
			ClimbRecovery: 0.35,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
