package runner_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/forestlab/silva/internal/model"
	"github.com/forestlab/silva/internal/runner"
)

// fakeController is a scriptable test double for the orchestrator's
// collaborator contract.
type fakeController struct {
	configureErr error
	createErr    error
	runErr       error
	createPanic  any
	runPanic     any

	configureCalls int
	createCalls    int
	runCalls       int
	closeCalls     int
	lastPath       string
	lastSteps      int
}

func (f *fakeController) SetProjectFile(path string) error {
	f.configureCalls++
	f.lastPath = path
	return f.configureErr
}

func (f *fakeController) Create() error {
	f.createCalls++
	if f.createPanic != nil {
		panic(f.createPanic)
	}
	return f.createErr
}

func (f *fakeController) Run(ctx context.Context, steps int) error {
	f.runCalls++
	f.lastSteps = steps
	if f.runPanic != nil {
		panic(f.runPanic)
	}
	return f.runErr
}

func (f *fakeController) Close() error {
	f.closeCalls++
	return nil
}

var _ = Describe("Orchestrator", func() {
	var (
		fake        *fakeController
		constructed int
		registry    *runner.Registry
		orch        *runner.Orchestrator
	)

	BeforeEach(func() {
		fake = &fakeController{}
		constructed = 0
		registry = runner.NewRegistry()
		factory := func() runner.Controller {
			constructed++
			return fake
		}
		orch = runner.New("data/project.yaml", factory, registry, nil)
	})

	Describe("validation", func() {
		It("rejects negative years without constructing a controller", func() {
			out := orch.Execute(context.Background(), -1)

			Expect(out.Status).To(Equal(runner.StatusValidationRejected))
			Expect(constructed).To(BeZero())
			Expect(fake.configureCalls).To(BeZero())
			Expect(fake.createCalls).To(BeZero())
			Expect(fake.runCalls).To(BeZero())
		})

		It("accepts zero years", func() {
			out := orch.Execute(context.Background(), 0)

			Expect(out.Status).To(Equal(runner.StatusCompleted))
			Expect(fake.lastSteps).To(Equal(1))
		})
	})

	Describe("a successful run", func() {
		It("completes and requests exactly years+1 steps", func() {
			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusCompleted))
			Expect(fake.runCalls).To(Equal(1))
			Expect(fake.lastSteps).To(Equal(11))
		})

		It("hands the controller the project location", func() {
			orch.Execute(context.Background(), 1)

			Expect(fake.lastPath).To(Equal("data/project.yaml"))
		})

		It("closes the controller and frees the registry slot", func() {
			orch.Execute(context.Background(), 1)

			Expect(fake.closeCalls).To(Equal(1))
			Expect(registry.Active()).To(BeNil())
		})
	})

	Describe("phase failures", func() {
		It("stops at a configure failure before create", func() {
			fake.configureErr = errors.New("bad project location")

			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusPhaseFailed))
			Expect(out.Phase).To(Equal(runner.PhaseConfigure))
			Expect(fake.createCalls).To(BeZero())
			Expect(fake.runCalls).To(BeZero())
		})

		It("stops at a create failure and never runs", func() {
			fake.createErr = errors.New("species table missing")

			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusPhaseFailed))
			Expect(out.Phase).To(Equal(runner.PhaseCreate))
			Expect(out.Message).To(ContainSubstring("species table missing"))
			Expect(fake.runCalls).To(BeZero())
		})

		It("reports a run failure after a successful create", func() {
			fake.runErr = errors.New("year 3 blew up")

			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusPhaseFailed))
			Expect(out.Phase).To(Equal(runner.PhaseRun))
			Expect(fake.createCalls).To(Equal(1))
		})

		It("still closes the controller on failure", func() {
			fake.createErr = errors.New("nope")

			orch.Execute(context.Background(), 10)

			Expect(fake.closeCalls).To(Equal(1))
			Expect(registry.Active()).To(BeNil())
		})
	})

	Describe("the exception boundary", func() {
		It("converts a create panic into an aborted outcome", func() {
			fake.createPanic = "landscape allocation failed"

			var out runner.Outcome
			Expect(func() {
				out = orch.Execute(context.Background(), 10)
			}).NotTo(Panic())
			Expect(out.Status).To(Equal(runner.StatusAborted))
			Expect(out.Message).To(ContainSubstring("landscape allocation failed"))
		})

		It("converts a run panic into an aborted outcome", func() {
			fake.runPanic = errors.New("index out of range")

			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusAborted))
		})

		It("treats an engine fault as aborted, not phase-failed", func() {
			fake.runErr = &model.Fault{Err: errors.New("invalid biomass state")}

			out := orch.Execute(context.Background(), 10)

			Expect(out.Status).To(Equal(runner.StatusAborted))
			Expect(out.Message).To(ContainSubstring("invalid biomass state"))
		})
	})

	Describe("sequential invocations", func() {
		It("constructs an independent controller per run", func() {
			fakes := make([]*fakeController, 0, 2)
			factory := func() runner.Controller {
				f := &fakeController{}
				if len(fakes) == 0 {
					f.createErr = errors.New("first run fails")
				}
				fakes = append(fakes, f)
				return f
			}
			orch := runner.New("project.yaml", factory, runner.NewRegistry(), nil)

			first := orch.Execute(context.Background(), 5)
			second := orch.Execute(context.Background(), 7)

			Expect(first.Status).To(Equal(runner.StatusPhaseFailed))
			Expect(second.Status).To(Equal(runner.StatusCompleted))
			Expect(fakes).To(HaveLen(2))
			Expect(fakes[1].lastSteps).To(Equal(8))
		})
	})

	Describe("exit codes", func() {
		It("maps every status to its process exit code", func() {
			Expect(runner.Completed().ExitCode()).To(Equal(0))
			Expect(runner.ValidationRejected("r").ExitCode()).To(Equal(2))
			Expect(runner.PhaseFailed(runner.PhaseCreate, "m").ExitCode()).To(Equal(3))
			Expect(runner.Aborted("m").ExitCode()).To(Equal(4))
		})
	})
})

var _ = Describe("Registry", func() {
	It("rejects a second registration while occupied", func() {
		reg := runner.NewRegistry()
		first := &fakeController{}

		release, err := reg.Register(first)
		Expect(err).NotTo(HaveOccurred())
		Expect(reg.Active()).To(BeIdenticalTo(first))

		_, err = reg.Register(&fakeController{})
		Expect(err).To(MatchError(runner.ErrSlotOccupied))

		release()
		Expect(reg.Active()).To(BeNil())
	})

	It("tolerates a double release", func() {
		reg := runner.NewRegistry()
		release, err := reg.Register(&fakeController{})
		Expect(err).NotTo(HaveOccurred())

		release()
		release()

		_, err = reg.Register(&fakeController{})
		Expect(err).NotTo(HaveOccurred())
	})
})
