package scenetest

import (
	"github.com/stretchr/testify/suite"

	"github.com/nascentdigital/scene/api"
	"github.com/nascentdigital/scene/common"
	"github.com/nascentdigital/scene/hooks"
)

// Suite is a testify suite whose browser handles follow its setup and
// teardown methods.
//
//	type LoginSuite struct {
//		*scenetest.Suite
//		page *common.Page
//	}
//
//	func TestLogin(t *testing.T) {
//		s := &LoginSuite{Suite: scenetest.NewSuite(env)}
//		s.page = s.UsePage(nil, common.PerTest)
//		suite.Run(t, s)
//	}
//
// Suites that define their own SetupSuite, TearDownSuite, SetupTest or
// TearDownTest must call the embedded method.
type Suite struct {
	suite.Suite

	registry *hooks.Registry
	scene    *common.Scene
}

// NewSuite returns a suite whose scene is built by builder.
func NewSuite(builder SceneBuilder) *Suite {
	s := &Suite{}
	s.registry = hooks.NewRegistry(nil)
	s.scene = builder.Scene(s.registry)
	return s
}

// Registry returns the hooks registry the suite fires.
func (s *Suite) Registry() *hooks.Registry {
	return s.registry
}

// Scene returns the scene handles are declared on.
func (s *Suite) Scene() *common.Scene {
	return s.scene
}

// UseBrowserContext declares a browser context bound to the suite
// lifecycle. See common.Scene.UseBrowserContext.
func (s *Suite) UseBrowserContext(opts *api.BrowserContextOptions, mode common.SharingMode) *common.BrowserContext {
	return s.scene.UseBrowserContext(opts, mode)
}

// UsePage declares a page bound to the suite lifecycle. See
// common.Scene.UsePage.
func (s *Suite) UsePage(opts *api.BrowserContextOptions, mode common.SharingMode) *common.Page {
	return s.scene.UsePage(opts, mode)
}

func (s *Suite) SetupSuite() {
	if err := s.registry.BeforeAll(); err != nil {
		// TearDownSuite is not called when SetupSuite fails.
		s.NoError(s.registry.AfterAll(), "suite teardown")
		s.Require().NoError(err, "suite setup")
	}
}

func (s *Suite) TearDownSuite() {
	s.NoError(s.registry.AfterAll(), "suite teardown")
}

func (s *Suite) SetupTest() {
	s.Require().NoError(s.registry.BeforeEach(), "test setup")
}

func (s *Suite) TearDownTest() {
	s.NoError(s.registry.AfterEach(), "test teardown")
}
