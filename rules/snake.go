package rules

// Snake is the ordered body of the snake, head first and tail last.
type Snake struct {
	Body []*Point
}

// Move the snake 1 space in the specified direction, move does not remove the
// end point of the snake, that will be done after the snake has had a chance
// to eat.
func (s *Snake) Move(direction Direction) {
	h := s.Head()
	if h == nil {
		return
	}
	dx, dy := direction.Offset()
	s.Body = append([]*Point{
		{X: h.X + dx, Y: h.Y + dy},
	}, s.Body...)
}

// Head returns the first point in the body
func (s *Snake) Head() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() *Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[len(s.Body)-1]
}

// Len is the number of segments.
func (s *Snake) Len() int { return len(s.Body) }

// popTail removes and returns the last segment.
func (s *Snake) popTail() *Point {
	t := s.Tail()
	if t == nil {
		return nil
	}
	s.Body = s.Body[:len(s.Body)-1]
	return t
}

// Points returns a detached copy of the body.
func (s *Snake) Points() []Point {
	points := make([]Point, 0, len(s.Body))
	for _, b := range s.Body {
		points = append(points, *b)
	}
	return points
}
