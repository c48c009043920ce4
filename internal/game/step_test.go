package game

import (
	"math"
	"testing"

	"github.com/remram44/japong/configs"
	"github.com/remram44/japong/internal/input"
)

func testField() configs.Field {
	return configs.Field{
		Width:        400,
		Height:       300,
		RacketWidth:  10,
		RacketHeight: 60,
		BallSize:     30,
		RacketSpeed:  0.15,
		BallSpeed:    0.2,
	}
}

// naiveBounce reflete uma parede de cada vez, sem limite de iterações.
func naiveBounce(y, vy, span float64) (float64, float64) {
	for {
		switch {
		case y > span:
			y = 2*span - y
		case y < 0:
			y = -y
		default:
			return y, vy
		}
		vy = -vy
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(testField(), Right)
	if s.Rackets[Left].X != 5 || s.Rackets[Right].X != 400-10-5 {
		t.Fatalf("racket x = %v, %v", s.Rackets[Left].X, s.Rackets[Right].X)
	}
	for i, r := range s.Rackets {
		if r.Y != 120 || r.V != 0 {
			t.Errorf("racket %d = %+v, want centred and still", i, r)
		}
	}
	if s.Ball != (Ball{X: 200, Y: 100, VX: 0.2, VY: 0.2}) {
		t.Fatalf("ball = %+v", s.Ball)
	}
	if s.LocalRacket() != &s.Rackets[Right] {
		t.Fatal("LocalRacket() does not point at the local racket")
	}
}

func TestWallReflectionKeepsBallInside(t *testing.T) {
	f := testField()
	span := f.Height - f.BallSize
	for _, elapsed := range []float64{0, 1, 16, 100, 1000, 1349, 1350, 1351, 2700, 5000, 12345.6} {
		for _, vy := range []float64{0.2, -0.2, 0.35, -1.7} {
			s := NewSession(f, Left)
			s.Ball = Ball{X: 200, Y: 100, VX: 0, VY: vy}

			s.Step(elapsed)

			wantY, wantVY := naiveBounce(100+vy*elapsed, vy, span)
			if s.Ball.Y < 0 || s.Ball.Y > span {
				t.Fatalf("elapsed=%v vy=%v: y = %v outside [0, %v]", elapsed, vy, s.Ball.Y, span)
			}
			if math.Abs(s.Ball.Y-wantY) > 1e-6 {
				t.Errorf("elapsed=%v vy=%v: y = %v, want %v", elapsed, vy, s.Ball.Y, wantY)
			}
			if s.Ball.VY != wantVY {
				t.Errorf("elapsed=%v vy=%v: VY = %v, want %v", elapsed, vy, s.Ball.VY, wantVY)
			}
		}
	}
}

func TestWallReflectionSingleCrossing(t *testing.T) {
	s := NewSession(testField(), Left)
	s.Ball = Ball{X: 200, Y: 260, VX: 0, VY: 0.2}

	s.Step(100) // y = 280, passa 10 da borda em 270

	if s.Ball.Y != 260 {
		t.Fatalf("y = %v, want 260", s.Ball.Y)
	}
	if s.Ball.VY != -0.2 {
		t.Fatalf("VY = %v, want -0.2", s.Ball.VY)
	}

	s.Ball.Y = 5
	s.Step(50) // y = -5

	if s.Ball.Y != 5 || s.Ball.VY != 0.2 {
		t.Fatalf("top bounce: y = %v VY = %v", s.Ball.Y, s.Ball.VY)
	}
}

func TestWallReflectionHugeElapsedTerminates(t *testing.T) {
	f := testField()
	span := f.Height - f.BallSize
	for _, elapsed := range []float64{1e6, 1e9, 1e12, math.MaxFloat32} {
		s := NewSession(f, Left)
		s.Ball = Ball{X: 200, Y: 100, VX: 0, VY: 0.2}
		s.Step(elapsed)
		if s.Ball.Y < 0 || s.Ball.Y > span || math.IsNaN(s.Ball.Y) {
			t.Fatalf("elapsed=%v: y = %v outside [0, %v]", elapsed, s.Ball.Y, span)
		}
		if math.Abs(s.Ball.VY) != 0.2 {
			t.Fatalf("elapsed=%v: |VY| changed to %v", elapsed, s.Ball.VY)
		}
	}
}

func TestWallReflectionBallTallerThanField(t *testing.T) {
	f := testField()
	f.BallSize = f.Height + 10
	s := NewSession(f, Left)
	s.Ball = Ball{X: 40, Y: 40, VX: 0, VY: 0.2}
	s.Step(16)
	if s.Ball.Y != 0 {
		t.Fatalf("y = %v, want pinned to 0", s.Ball.Y)
	}
}

func TestLeftRacketDeflection(t *testing.T) {
	f := testField()
	s := NewSession(f, Left)
	s.Rackets[Left] = Racket{X: 5, Y: 100}
	// 12 < 5+10, 110+30 > 100 e 110 < 100+60.
	s.Ball = Ball{X: 12, Y: 110, VX: -0.2, VY: 0}

	s.Step(1)

	if s.Ball.VX != 0.2 {
		t.Fatalf("VX = %v, want 0.2", s.Ball.VX)
	}

	// Ainda sobreposta no quadro seguinte: o sinal continua positivo.
	s.Ball.X = 12
	s.Step(1)
	if s.Ball.VX <= 0 {
		t.Fatalf("second overlapping frame flipped VX to %v", s.Ball.VX)
	}
}

func TestRightRacketDeflection(t *testing.T) {
	f := testField()
	s := NewSession(f, Left)
	right := s.Rackets[Right]
	s.Ball = Ball{X: right.X - 25, Y: right.Y + 10, VX: 0.2, VY: 0}

	s.Step(1)
	if s.Ball.VX != -0.2 {
		t.Fatalf("VX = %v, want -0.2", s.Ball.VX)
	}
	s.Step(1)
	if s.Ball.VX >= 0 {
		t.Fatalf("second overlapping frame flipped VX to %v", s.Ball.VX)
	}
}

func TestRacketOverlapIsHalfOpen(t *testing.T) {
	f := testField()
	tests := []struct {
		name string
		y    float64
		hit  bool
	}{
		{"touching top edge", 100 - 30, false},
		{"one pixel into top", 100 - 29, true},
		{"last row", 159, true},
		{"touching bottom edge", 160, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(f, Left)
			s.Rackets[Left] = Racket{X: 5, Y: 100}
			s.Ball = Ball{X: 12, Y: tt.y, VX: -0.2, VY: 0}
			s.Step(0)
			if got := s.Ball.VX > 0; got != tt.hit {
				t.Fatalf("deflected = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestRespawn(t *testing.T) {
	f := testField()
	s := NewSession(f, Left)
	s.Ball = Ball{X: -5, Y: 10, VX: -0.2, VY: 0.2}

	out := s.Step(0)

	if s.Ball.X != 185 {
		t.Fatalf("x = %v, want 185", s.Ball.X)
	}
	if s.Ball.VX != 0.2 {
		t.Fatalf("VX = %v, want 0.2", s.Ball.VX)
	}
	if s.Ball.Y != f.Height/3 {
		t.Fatalf("y = %v, want spawn height %v", s.Ball.Y, f.Height/3)
	}
	if !out.Scored || out.Conceded != Left {
		t.Fatalf("outcome = %+v", out)
	}
	if s.Score != [2]int{0, 1} {
		t.Fatalf("score = %v", s.Score)
	}
}

func TestRespawnRightEdge(t *testing.T) {
	f := testField()
	s := NewSession(f, Left)
	s.Ball = Ball{X: 380, Y: 10, VX: 0.2, VY: 0}

	out := s.Step(0)

	if !out.Scored || out.Conceded != Right {
		t.Fatalf("outcome = %+v", out)
	}
	if s.Ball.X != 185 || s.Ball.VX != -0.2 {
		t.Fatalf("ball = %+v", s.Ball)
	}
	if s.Score != [2]int{1, 0} {
		t.Fatalf("score = %v", s.Score)
	}
}

func TestNoScoreInside(t *testing.T) {
	s := NewSession(testField(), Left)
	if out := s.Step(16); out.Scored {
		t.Fatalf("unexpected score: %+v", out)
	}
}

func TestLocalRacketVelocityFollowsInput(t *testing.T) {
	f := testField()
	s := NewSession(f, Right)

	s.Input.KeyDown(input.KeyDown)
	s.Step(10)
	if got := s.Rackets[Right].V; got != 0.15 {
		t.Fatalf("V = %v, want 0.15", got)
	}
	if got := s.Rackets[Right].Y; got != 121.5 {
		t.Fatalf("Y = %v, want 121.5", got)
	}
	if s.Rackets[Left].V != 0 {
		t.Fatal("remote racket moved")
	}

	s.Input.KeyDown(input.KeyUp)
	s.Step(10)
	if got := s.Rackets[Right].V; got != 0 {
		t.Fatalf("V with both keys = %v, want 0", got)
	}

	s.Input.KeyUp(input.KeyDown)
	s.Step(0)
	if got := s.Rackets[Right].V; got != -0.15 {
		t.Fatalf("V = %v, want -0.15", got)
	}
}

func TestVelocityWrittenOnlyOnChange(t *testing.T) {
	s := NewSession(testField(), Left)
	s.Input.KeyDown(input.KeyDown)
	s.Step(1)

	// Um valor externo não é sobrescrito enquanto a direção não mudar.
	s.Rackets[Left].V = 0.5
	s.Step(0)
	if s.Rackets[Left].V != 0.5 {
		t.Fatalf("V rewritten to %v without a direction change", s.Rackets[Left].V)
	}
}

func TestRacketsStayInsideField(t *testing.T) {
	f := testField()
	s := NewSession(f, Left)
	s.Input.KeyDown(input.KeyDown)
	s.Step(10000)
	if got, want := s.Rackets[Left].Y, f.Height-f.RacketHeight; got != want {
		t.Fatalf("Y = %v, want clamped to %v", got, want)
	}

	s.Input.KeyUp(input.KeyDown)
	s.Input.KeyDown(input.KeyUp)
	s.Step(10000)
	if got := s.Rackets[Left].Y; got != 0 {
		t.Fatalf("Y = %v, want clamped to 0", got)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		pos, span     float64
		want, crosses float64
	}{
		{pos: 15, span: 10, want: 5, crosses: 1},
		{pos: 25, span: 10, want: 5, crosses: 2},
		{pos: 20, span: 10, want: 0, crosses: 1},
		{pos: -5, span: 10, want: 5, crosses: 1},
		{pos: -10, span: 10, want: 10, crosses: 1},
		{pos: -15, span: 10, want: 5, crosses: 2},
		{pos: 1005, span: 10, want: 5, crosses: 100},
	}
	for _, tt := range tests {
		got, crosses := fold(tt.pos, tt.span)
		if got != tt.want || crosses != tt.crosses {
			t.Errorf("fold(%v, %v) = %v, %v; want %v, %v", tt.pos, tt.span, got, crosses, tt.want, tt.crosses)
		}
	}
}
