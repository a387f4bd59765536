package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/eleven413/playcall/pkg/metrics"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
		So(m, ShouldNotBeNil)

		Convey("Then all pipeline metrics register without collision", func() {
			families, err := reg.Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			for _, want := range []string{
				"playcall_pipeline_rows_loaded_total",
				"playcall_pipeline_train_rows",
				"playcall_pipeline_test_rows",
				"playcall_pipeline_runs_total",
				"playcall_pipeline_runs_failed_total",
			} {
				So(names[want], ShouldBeTrue)
			}
		})

		Convey("Then a second manager on another registry is independent", func() {
			other := prometheus.NewRegistry()
			So(func() {
				metrics.NewManager(metrics.WithPrometheusRegistry(other))
			}, ShouldNotPanic)
		})
	})

	Convey("Given custom namespace and subsystem", t, func() {
		reg := prometheus.NewRegistry()
		metrics.NewManager(
			metrics.WithNamespace("nfl"),
			metrics.WithSubsystem("batch"),
			metrics.WithPrometheusRegistry(reg),
		)

		families, err := reg.Gather()
		So(err, ShouldBeNil)

		found := false
		for _, f := range families {
			if f.GetName() == "nfl_batch_rows_loaded_total" {
				found = true
			}
		}
		So(found, ShouldBeTrue)
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the package-level recording helpers", t, func() {
		Convey("Then they record without panicking", func() {
			So(func() {
				metrics.RecordRunStarted()
				metrics.RecordRowsLoaded(100)
				metrics.RecordRowsDropped("old_season", 3)
				metrics.RecordRowsDropped("play_type", 0)
				metrics.UpdateSplitSizes(80, 17)
				metrics.ObserveFitDuration("decision_tree", 40*time.Millisecond)
				metrics.ObservePredictDuration("decision_tree", 2*time.Millisecond)
				metrics.SetModelAccuracy("decision_tree", 0.71)
				metrics.RecordModelError("gradient_boost")
				metrics.RecordRunFailed()
				metrics.ObserveRunDuration(120 * time.Millisecond)
			}, ShouldNotPanic)
		})

		Convey("Then the global registry exposes the recorded series", func() {
			metrics.RecordRowsLoaded(1)

			families, err := metrics.Registry().Gather()
			So(err, ShouldBeNil)

			found := false
			for _, f := range families {
				if f.GetName() == "playcall_pipeline_rows_loaded_total" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}
