package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eleven413/playcall/pkg/logger"
)

func TestInit(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "test message", logger.String("key", "value"))
			}, ShouldNotPanic)
		})

		Convey("Then Named returns a scoped logger", func() {
			l := logger.Named("pipeline")
			So(l, ShouldNotBeNil)
			So(func() {
				l.Debug(context.Background(), "scoped message")
			}, ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the global level setter", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known level names parse", func() {
			for _, name := range []string{"debug", "info", "warn", "warning", "error", "INFO", ""} {
				So(logger.SetLevelString(name), ShouldBeNil)
			}
		})

		Convey("Then an unknown name is rejected", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})

		Convey("Then SetLevel accepts slog levels directly", func() {
			So(func() { logger.SetLevel(slog.LevelWarn) }, ShouldNotPanic)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		err := errors.New("boom")

		Convey("Then each carries its key and value", func() {
			So(logger.String("s", "v"), ShouldResemble, logger.Field{Key: "s", Value: "v"})
			So(logger.Int("i", 7), ShouldResemble, logger.Field{Key: "i", Value: 7})
			So(logger.Int64("i64", int64(9)), ShouldResemble, logger.Field{Key: "i64", Value: int64(9)})
			So(logger.Float64("f", 0.5), ShouldResemble, logger.Field{Key: "f", Value: 0.5})
			So(logger.Duration("d", time.Second), ShouldResemble, logger.Field{Key: "d", Value: time.Second})
			So(logger.Error(err), ShouldResemble, logger.Field{Key: "error", Value: err})
		})
	})
}
