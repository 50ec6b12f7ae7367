package shell

import (
	"fmt"
	"strings"

	"github.com/osse101/SuperAdventure_Go/internal/domain"
	"github.com/osse101/SuperAdventure_Go/internal/world"
)

type gridPoint struct {
	x, y int
}

// mapCoordinates walks the world graph from home and assigns each reachable
// location a grid position. North decreases y, east increases x.
func mapCoordinates(catalog *world.Catalog) map[int]gridPoint {
	coords := map[int]gridPoint{world.LocationIDHome: {0, 0}}
	queue := []int{world.LocationIDHome}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		at := coords[id]
		location := catalog.LocationByID(id)

		neighbors := []struct {
			id int
			at gridPoint
		}{
			{location.NorthID, gridPoint{at.x, at.y - 1}},
			{location.SouthID, gridPoint{at.x, at.y + 1}},
			{location.EastID, gridPoint{at.x + 1, at.y}},
			{location.WestID, gridPoint{at.x - 1, at.y}},
		}
		for _, n := range neighbors {
			if n.id == 0 {
				continue
			}
			if _, seen := coords[n.id]; seen {
				continue
			}
			coords[n.id] = n.at
			queue = append(queue, n.id)
		}
	}
	return coords
}

// displayMap draws the explored part of the world. Visited locations show
// their name, the current one is marked with a star, and unvisited neighbors
// of explored ground show as question marks. Everything else stays dark.
func (s *Shell) displayMap() {
	coords := mapCoordinates(s.catalog)

	visible := map[gridPoint]string{}
	minX, maxX, minY, maxY := 0, 0, 0, 0
	see := func(at gridPoint, label string) {
		if _, taken := visible[at]; taken {
			return
		}
		visible[at] = label
		if at.x < minX {
			minX = at.x
		}
		if at.x > maxX {
			maxX = at.x
		}
		if at.y < minY {
			minY = at.y
		}
		if at.y > maxY {
			maxY = at.y
		}
	}

	current := s.player.CurrentLocation().ID
	for _, location := range s.catalog.Locations() {
		if !s.player.HasVisited(location.ID) && location.ID != current {
			continue
		}
		at := coords[location.ID]
		label := location.Name
		if location.ID == current {
			label = "*" + label
		}
		see(at, label)
		s.revealUnvisitedNeighbors(coords, location, see)
	}

	width := 0
	for _, label := range visible {
		if len(label) > width {
			width = len(label)
		}
	}

	for y := minY; y <= maxY; y++ {
		cells := make([]string, 0, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			label := visible[gridPoint{x, y}]
			cells = append(cells, fmt.Sprintf("[%-*s]", width, label))
		}
		fmt.Fprintln(s.out, strings.Join(cells, " "))
	}
}

func (s *Shell) revealUnvisitedNeighbors(coords map[int]gridPoint, location domain.Location, see func(gridPoint, string)) {
	for _, id := range []int{location.NorthID, location.SouthID, location.EastID, location.WestID} {
		if id == 0 || s.player.HasVisited(id) {
			continue
		}
		see(coords[id], "?")
	}
}
