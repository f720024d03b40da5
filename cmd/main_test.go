package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSetup(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		Convey("When running setup without overrides", func() {
			cfg, err := setup(context.Background(), "")

			Convey("Then defaults load", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.CSVPath, ShouldEqual, "NBA_career_stats.csv")
			})
		})

		Convey("When a CSV override is given", func() {
			cfg, err := setup(context.Background(), "/tmp/custom.csv")
			So(err, ShouldBeNil)
			So(cfg.CSVPath, ShouldEqual, "/tmp/custom.csv")
		})
	})
}

func TestNewService(t *testing.T) {
	Convey("Given a loaded config", t, func() {
		path := filepath.Join(t.TempDir(), "stats.csv")
		csv := "player,pos,pts,reb\nA,G,10,5\nB,G,12,6\nC,F,30,15\n"
		So(os.WriteFile(path, []byte(csv), 0o644), ShouldBeNil)

		cfg, err := setup(context.Background(), path)
		So(err, ShouldBeNil)

		Convey("When building and starting the service", func() {
			svc := newService(cfg)
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			Convey("Then a query round-trips", func() {
				entries, err := svc.FindSimilar(context.Background(), "A", 2, false, "")
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 2)
				So(entries[0].PlayerID, ShouldEqual, "B")
			})
		})
	})
}
