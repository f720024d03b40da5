package types_test

import (
	"encoding/json"
	"testing"

	"github.com/courtmate/courtmate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSimilarEntryJSON(t *testing.T) {
	Convey("Given a similar entry", t, func() {
		e := types.SimilarEntry{
			Rank:       1,
			PlayerID:   "Curry",
			Position:   "G",
			Distance:   0.5,
			Similarity: 66.7,
			KeyStats:   map[string]float64{"pts": 24.3},
		}

		Convey("When marshaled", func() {
			b, err := json.Marshal(e)
			So(err, ShouldBeNil)

			var m map[string]any
			So(json.Unmarshal(b, &m), ShouldBeNil)

			Convey("Then the wire field names are stable", func() {
				So(m["rank"], ShouldEqual, 1)
				So(m["player_id"], ShouldEqual, "Curry")
				So(m["position"], ShouldEqual, "G")
				So(m["distance"], ShouldEqual, 0.5)
				So(m["similarity_pct"], ShouldEqual, 66.7)
				So(m["key_stats"], ShouldNotBeNil)
			})
		})

		Convey("When key stats are empty they are omitted", func() {
			e.KeyStats = nil
			b, err := json.Marshal(e)
			So(err, ShouldBeNil)
			So(string(b), ShouldNotContainSubstring, "key_stats")
		})
	})
}

func TestCareerEntryJSON(t *testing.T) {
	Convey("Given a career entry", t, func() {
		b, err := json.Marshal(types.CareerEntry{
			Rank: 1, PlayerID: "Jordan", Position: "G", CareerScore: 9.1,
		})
		So(err, ShouldBeNil)

		var m map[string]any
		So(json.Unmarshal(b, &m), ShouldBeNil)
		So(m["rank"], ShouldEqual, 1)
		So(m["player_id"], ShouldEqual, "Jordan")
		So(m["position"], ShouldEqual, "G")
		So(m["career_score"], ShouldEqual, 9.1)
	})
}
