package main

import "github.com/plus3/stride/terrain"

// buildCourse lays out a low step, a raised platform and a wall the body cannot climb.
func buildCourse() *terrain.Field {
	field := terrain.NewField(1, 0)
	field.Fill(terrain.Cell{X: -3, Z: 4}, terrain.Cell{X: 3, Z: 5}, 0.2)
	field.Fill(terrain.Cell{X: 4, Z: 0}, terrain.Cell{X: 7, Z: 3}, 1)
	field.Fill(terrain.Cell{X: -20, Z: 14}, terrain.Cell{X: 20, Z: 14}, 2)
	return field
}
