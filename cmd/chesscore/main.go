// Command chesscore is a plain local play driver: it accepts e2e4-style
// moves on stdin, prints the board, and asks the engine to reply. It is not
// a UCI engine and speaks no network protocol — per the core's Out-of-scope
// list, any online play client or move-exchange transport is an external
// collaborator's concern, not the core's.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kpeck/corechess/internal/board"
	"github.com/kpeck/corechess/internal/book"
	"github.com/kpeck/corechess/internal/search"
	"github.com/kpeck/corechess/internal/store"
	"github.com/seekerror/logw"
)

var (
	depth      = flag.Int("depth", search.DefaultDepth, "search depth in plies")
	workers    = flag.Int("workers", search.DefaultWorkers, "root-level worker count")
	engineSide = flag.String("side", "black", "side the engine plays: white or black")
	storePath  = flag.String("store", "", "directory for the persisted config/book-cursor store (empty disables persistence)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chesscore [options]

chesscore is a local play driver for the corechess engine core: it reads
moves in e2e4-style coordinate notation from stdin, prints the board after
every ply, and asks the engine to reply on its turn.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	engineColor := board.White
	if strings.EqualFold(*engineSide, "black") {
		engineColor = board.Black
	} else if !strings.EqualFold(*engineSide, "white") {
		logw.Exitf(ctx, "invalid -side %q: want white or black", *engineSide)
	}

	cfg := search.Config{Depth: *depth, Workers: *workers}

	var db *store.Store
	if *storePath != "" {
		var err error
		db, err = store.OpenAt(ctx, *storePath)
		if err != nil {
			logw.Exitf(ctx, "open store at %s: %v", *storePath, err)
		}
		defer db.Close()

		if err := db.SaveConfig(store.Config{Depth: cfg.Depth, Workers: cfg.Workers, EngineColor: engineColor}); err != nil {
			logw.Warningf(ctx, "save config: %v", err)
		}
	}

	ob := book.New()
	var played []board.Move
	if db != nil {
		history, err := db.LoadBookHistory()
		if err != nil {
			logw.Warningf(ctx, "load book history: %v", err)
		}
		played = replayBook(ob, history)
	}

	pos := board.NewPosition()
	for _, m := range played {
		if !pos.TryMove(m.X1, m.Y1, m.X2, m.Y2) {
			logw.Exitf(ctx, "persisted book history replays an illegal move %v", m)
		}
	}

	d := &driver{
		ctx:    ctx,
		pos:    pos,
		book:   ob,
		store:  db,
		played: played,
		engine: engineColor,
		cfg:    cfg,
		in:     bufio.NewScanner(os.Stdin),
	}
	d.run()
}

// replayBook feeds a previously-persisted move history back through a fresh
// book.Book so its cursor lands where it was left, since the book's
// internal node pointers are never serialized directly (see internal/store).
func replayBook(ob *book.Book, history []board.Move) []board.Move {
	if len(history) == 0 {
		return nil
	}
	first, ok := ob.FirstMove()
	if !ok || first != history[0] {
		return history
	}
	for _, m := range history[1:] {
		if _, ok := ob.Advance(m); !ok {
			break
		}
	}
	return history
}

type driver struct {
	ctx    context.Context
	pos    *board.Position
	book   *book.Book
	store  *store.Store
	played []board.Move
	engine board.Color
	cfg    search.Config
	in     *bufio.Scanner
}

func (d *driver) run() {
	fmt.Println(d.pos.String())

	if d.pos.SideToMove == d.engine {
		d.engineMove()
	}

	for {
		fmt.Printf("%s to move> ", d.pos.SideToMove)
		if !d.in.Scan() {
			return
		}
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		m, ok := board.ParseMove(line)
		if !ok {
			fmt.Println("unrecognized move, want e2e4-style coordinate notation")
			continue
		}

		result := d.pos.MakeMove(m.X1, m.Y1, m.X2, m.Y2)
		if result == board.Rejected {
			fmt.Println("illegal move")
			continue
		}
		d.recordMove(m)
		fmt.Println(d.pos.String())
		if d.reportTerminal(result) {
			return
		}

		if d.pos.SideToMove == d.engine {
			if d.engineMove() {
				return
			}
		}
	}
}

// engineMove asks the book for a reply first, falling back to search if the
// book has nothing (or has already been disabled for this game). It reports
// whether the game ended.
func (d *driver) engineMove() bool {
	var reply board.Move
	var ok bool

	if d.book.Active() {
		if len(d.played) == 0 {
			reply, ok = d.book.FirstMove()
		} else {
			reply, ok = d.book.Advance(d.played[len(d.played)-1])
		}
	}

	if !ok {
		if len(d.pos.ListMoves(d.pos.SideToMove)) == 0 {
			// Terminal position reached on the engine's own turn: nothing to
			// search, per §7's "search on a terminal position" contract.
			return true
		}
		res := search.Search(d.ctx, d.pos, d.pos.SideToMove, d.cfg)
		reply = res.Move
		logw.Infof(d.ctx, "[engine] searched to depth=%d, score=%d, move=%v", d.cfg.Depth, res.Score, reply)
	} else {
		logw.Infof(d.ctx, "[engine] book move %v", reply)
	}

	result := d.pos.MakeMove(reply.X1, reply.Y1, reply.X2, reply.Y2)
	if result == board.Rejected {
		logw.Exitf(d.ctx, "engine produced an illegal move %v", reply)
	}
	d.recordMove(reply)
	fmt.Printf("engine plays %v\n\n", reply)
	fmt.Println(d.pos.String())
	return d.reportTerminal(result)
}

func (d *driver) recordMove(m board.Move) {
	d.played = append(d.played, m)
	if d.store != nil {
		if err := d.store.SaveBookHistory(d.played); err != nil {
			logw.Warningf(d.ctx, "save book history: %v", err)
		}
	}
}

func (d *driver) reportTerminal(result board.MoveResult) bool {
	switch result {
	case board.AcceptedCheckmate:
		fmt.Printf("checkmate: %s wins\n", d.pos.SideToMove.Opponent())
		return true
	case board.AcceptedStalemate:
		fmt.Println("stalemate: draw")
		return true
	default:
		return false
	}
}
