package config

import "fmt"

// Validate checks that generation parameters are within usable ranges.
func (c *Config) Validate() error {
	if c.Terrain.Octaves < 1 || c.Terrain.Octaves > 8 {
		return fmt.Errorf("terrain.octaves must be between 1 and 8, got %d", c.Terrain.Octaves)
	}
	if c.Terrain.GridResolution < 2 {
		return fmt.Errorf("terrain.grid_resolution must be at least 2, got %d", c.Terrain.GridResolution)
	}
	if c.Terrain.MaxElevation <= 0 {
		return fmt.Errorf("terrain.max_elevation must be positive, got %g", c.Terrain.MaxElevation)
	}
	if c.World.Size <= 0 {
		return fmt.Errorf("world.size must be positive, got %g", c.World.Size)
	}
	if c.Vegetation.InstanceCount <= 0 {
		return fmt.Errorf("vegetation.instance_count must be positive, got %d", c.Vegetation.InstanceCount)
	}
	if c.Vegetation.MaxAttempts < 1 {
		return fmt.Errorf("vegetation.max_attempts must be at least 1, got %d", c.Vegetation.MaxAttempts)
	}
	if c.Vegetation.MinElevation >= c.Vegetation.MaxElevation {
		return fmt.Errorf("vegetation.min_elevation %g must be below vegetation.max_elevation %g",
			c.Vegetation.MinElevation, c.Vegetation.MaxElevation)
	}
	if c.Tree.MaxDepth < 0 || c.Tree.MaxDepth > 8 {
		return fmt.Errorf("tree.max_depth must be between 0 and 8, got %d", c.Tree.MaxDepth)
	}
	if c.Tree.ShrinkFactor <= 0 || c.Tree.ShrinkFactor >= 1 {
		return fmt.Errorf("tree.shrink_factor must be in (0, 1), got %g", c.Tree.ShrinkFactor)
	}
	if c.Flight.MinSpeed > c.Flight.MaxSpeed {
		return fmt.Errorf("flight.min_speed %g exceeds flight.max_speed %g", c.Flight.MinSpeed, c.Flight.MaxSpeed)
	}
	return nil
}
