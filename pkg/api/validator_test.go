package api

import "testing"

func TestGenerateRequestValidate(t *testing.T) {
	cases := []struct {
		name   string
		req    GenerateRequest
		wantOK bool
	}{
		{"main first level", GenerateRequest{Branch: 0, Depth: 1}, true},
		{"main deepest", GenerateRequest{Branch: 0, Depth: 29}, true},
		{"main too deep", GenerateRequest{Branch: 0, Depth: 30}, false},
		{"gehennom deepest", GenerateRequest{Branch: 1, Depth: 7}, true},
		{"gehennom too deep", GenerateRequest{Branch: 1, Depth: 8}, false},
		{"planes", GenerateRequest{Branch: 7, Depth: 5}, true},
		{"zero depth", GenerateRequest{Branch: 0, Depth: 0}, false},
		{"negative branch", GenerateRequest{Branch: -1, Depth: 1}, false},
		{"unknown branch", GenerateRequest{Branch: 8, Depth: 1}, false},
	}
	for _, c := range cases {
		err := c.req.Validate()
		if c.wantOK && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
		if !c.wantOK && err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
