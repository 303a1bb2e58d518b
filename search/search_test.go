package search

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/irori/blokusduo/board"
)

func TestNegaScoutReturnsLegalMove(t *testing.T) {
	is := is.New(t)
	b := board.New(board.Mini())
	result := NegaScout(b, 3, 200*time.Millisecond, 2*time.Second)
	is.True(b.IsValidMove(result.Move))
}

func TestNegaScoutRespectsDeadline(t *testing.T) {
	is := is.New(t)
	b := board.New(board.Mini())
	start := time.Now()
	NegaScout(b, 30, 100*time.Millisecond, 150*time.Millisecond)
	is.True(time.Since(start) < 2*time.Second)
}

func TestWLDTerminatesNearGameEnd(t *testing.T) {
	is := is.New(t)
	b := board.New(board.Mini())
	// Play down to a near-terminal mini position so WLD resolves fast.
	for i := 0; i < 14 && !b.IsGameOver(); i++ {
		moves := b.ValidMoves()
		if len(moves) == 0 {
			break
		}
		b.PlayMove(moves[0])
	}
	result := WLD(b, 2*time.Second)
	is.True(result.Score >= -1 && result.Score <= 1)
}

func TestPerfectAgreesWithWLDSign(t *testing.T) {
	is := is.New(t)
	b := board.New(board.Mini())
	for i := 0; i < 20 && !b.IsGameOver(); i++ {
		moves := b.ValidMoves()
		if len(moves) == 0 {
			break
		}
		b.PlayMove(moves[0])
	}
	if b.IsGameOver() {
		return
	}
	wld := WLD(b, 3*time.Second)
	perfect := Perfect(b)
	if wld.Score != 0 {
		is.Equal(signOf(int(perfect.Score)), wld.Score)
	}
}

func TestOpeningMoveOnlyAppliesToStandardFirstPly(t *testing.T) {
	is := is.New(t)
	mini := board.New(board.Mini())
	is.True(!OpeningMove(&mini).IsValid())

	std := board.New(board.Standard())
	m := OpeningMove(&std)
	is.True(std.IsValidMove(m))
}
