package repository_test

import (
	"context"
	"testing"

	"github.com/courtmate/courtmate/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func testEntries() []repository.Entry {
	return []repository.Entry{
		{PlayerID: "Curry", Position: "G"},
		{PlayerID: "Antetokounmpo", Position: "F"},
		{PlayerID: "Jokic", Position: "C"},
		{PlayerID: "James", Position: "F"},
		{PlayerID: "Jordan", Position: "G"},
	}
}

func TestBTreeIndex(t *testing.T) {
	Convey("Given an index built from player entries", t, func() {
		ctx := context.Background()
		idx := repository.NewBTreeIndex(ctx, testEntries())

		Convey("When listing all players", func() {
			players := idx.Players(ctx, "", 0)

			Convey("Then ids come back in lexicographic order", func() {
				So(len(players), ShouldEqual, 5)
				for i := 1; i < len(players); i++ {
					So(players[i-1].PlayerID, ShouldBeLessThan, players[i].PlayerID)
				}
			})
		})

		Convey("When listing with a prefix", func() {
			players := idx.Players(ctx, "Jo", 0)

			Convey("Then only matching ids come back", func() {
				So(len(players), ShouldEqual, 2)
				So(players[0].PlayerID, ShouldEqual, "Jokic")
				So(players[1].PlayerID, ShouldEqual, "Jordan")
			})
		})

		Convey("When listing with a limit", func() {
			players := idx.Players(ctx, "", 2)
			So(len(players), ShouldEqual, 2)
		})

		Convey("When listing with a prefix nobody matches", func() {
			So(idx.Players(ctx, "Zz", 0), ShouldBeEmpty)
		})

		Convey("When getting a known player", func() {
			e, err := idx.Get(ctx, "Curry")
			So(err, ShouldBeNil)
			So(e.Position, ShouldEqual, "G")
		})

		Convey("When getting an unknown player", func() {
			_, err := idx.Get(ctx, "nobody")
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("When counting positions", func() {
			So(idx.Positions(ctx), ShouldResemble, map[string]int{"G": 2, "F": 2, "C": 1})
		})

		Convey("When counting players", func() {
			So(idx.Count(ctx), ShouldEqual, 5)
		})
	})
}

func TestBTreeIndex_Duplicates(t *testing.T) {
	Convey("Given duplicate ids in the input", t, func() {
		ctx := context.Background()
		idx := repository.NewBTreeIndex(ctx, []repository.Entry{
			{PlayerID: "A", Position: "G"},
			{PlayerID: "A", Position: "F"},
		})

		Convey("Then only one entry survives and counts stay consistent", func() {
			So(idx.Count(ctx), ShouldEqual, 1)
			total := 0
			for _, n := range idx.Positions(ctx) {
				total += n
			}
			So(total, ShouldEqual, 1)
		})
	})
}

func TestBTreeIndex_WithDegree(t *testing.T) {
	Convey("Given a custom branching factor", t, func() {
		idx := repository.NewBTreeIndex(context.Background(), testEntries(), repository.WithDegree(2))
		So(idx.Count(context.Background()), ShouldEqual, 5)
	})
}
