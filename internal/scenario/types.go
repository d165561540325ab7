package scenario

// Case is one test case within a scenario.
type Case struct {
	Text string `yaml:"text"`
	// Expect is the violation kind the detector should report:
	// none, self_declared_perfection, absolute_infallibility,
	// circular_moral_authority.
	Expect      string `yaml:"expect"`
	ExpectShock *bool  `yaml:"expect_shock,omitempty"`
}

// Scenario is a named collection of detector test cases.
type Scenario struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// CaseResult is the outcome of evaluating one test case.
type CaseResult struct {
	Index    int     `json:"index"`
	Passed   bool    `json:"passed"`
	Text     string  `json:"text"`
	Expected string  `json:"expected"`
	Actual   string  `json:"actual"`
	Shock    bool    `json:"shock,omitempty"`
	X        float64 `json:"x"`
}

// RunResult is the outcome of running all cases in one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
