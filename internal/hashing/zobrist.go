// Package hashing computes Zobrist keys for engine boards and provides a
// bounded, thread-safe table of results keyed by them.
package hashing

import (
	"golang.org/x/exp/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

const (
	pieceSlots  = 2 * (int(chess.King) - int(chess.Empty))
	squareCount = chess.BoardSize * chess.BoardSize
)

// keySet holds one random number per board feature.
type keySet struct {
	pieces    [pieceSlots][squareCount]uint64
	whiteMove uint64
	castling  [4]uint64
	enPassant [chess.BoardSize]uint64
}

// Two independent key sets: the first addresses the table, the second
// guards against index collisions.
var (
	primaryKeys = newKeySet(0x9E3779B97F4A7C15)
	checkKeys   = newKeySet(0xD1B54A32D192ED03)
)

func newKeySet(seed uint64) *keySet {
	r := rand.New(rand.NewSource(seed))
	ks := &keySet{whiteMove: r.Uint64()}
	for p := range ks.pieces {
		for sq := range ks.pieces[p] {
			ks.pieces[p][sq] = r.Uint64()
		}
	}
	for i := range ks.castling {
		ks.castling[i] = r.Uint64()
	}
	for i := range ks.enPassant {
		ks.enPassant[i] = r.Uint64()
	}
	return ks
}

// Signature identifies a position. Equal boards always produce equal
// signatures.
type Signature struct {
	// Hash is the Zobrist hash used to index a Table.
	Hash uint64
	// Check is a second hash compared on lookup.
	Check uint64
}

// Key returns the signature of b: piece placement, side to move, castling
// rights and the en-passant column.
func Key(b *engine.Board) Signature {
	return Signature{
		Hash:  primaryKeys.hash(b),
		Check: checkKeys.hash(b),
	}
}

func (ks *keySet) hash(b *engine.Board) uint64 {
	var h uint64
	for row := int8(0); row < chess.BoardSize; row++ {
		for col := int8(0); col < chess.BoardSize; col++ {
			piece := b.At(chess.Pos(row, col))
			if piece.IsEmpty() {
				continue
			}
			h ^= ks.pieces[pieceSlot(piece)][int(row)*chess.BoardSize+int(col)]
		}
	}
	if b.Turn() == chess.White {
		h ^= ks.whiteMove
	}
	rights := [4]bool{
		b.CanCastle(chess.White, true),
		b.CanCastle(chess.White, false),
		b.CanCastle(chess.Black, true),
		b.CanCastle(chess.Black, false),
	}
	for i, ok := range rights {
		if ok {
			h ^= ks.castling[i]
		}
	}
	if col := b.EnPassantCol(); col != engine.NoEnPassant {
		h ^= ks.enPassant[col]
	}
	return h
}

func pieceSlot(p chess.Piece) int {
	return (int(p.Kind)-1)*2 + int(p.Colour)
}
