package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorDefArgs(t *testing.T) {
	def := &OperatorDef{
		Type: "SpatialBN",
		Args: []Argument{
			{Name: "is_test", I: 1},
			{Name: "epsilon", F: 1e-5},
			{Name: "order", S: "NHWC"},
		},
	}

	assert.True(t, def.HasArg("is_test"))
	assert.False(t, def.HasArg("momentum"))

	assert.Equal(t, int64(1), def.GetArgInt("is_test", 0))
	assert.Equal(t, int64(7), def.GetArgInt("missing", 7))

	assert.InDelta(t, 1e-5, def.GetArgFloat("epsilon", 0), 1e-9)
	assert.InDelta(t, 0.9, def.GetArgFloat("missing", 0.9), 1e-9)

	assert.Equal(t, "NHWC", def.GetArgString("order", "NCHW"))
	assert.Equal(t, "NCHW", def.GetArgString("missing", "NCHW"))
}

func TestGradientName(t *testing.T) {
	assert.Equal(t, "X_grad", GradientName("X"))
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		def     OperatorDef
		wantErr bool
	}{
		{
			"gradient op ok",
			OperatorDef{
				Type:    "SpatialBNGradient",
				Inputs:  []string{"X", "scale", "dY", "mean", "inv_std"},
				Outputs: []string{"dX", "dScale", "dBias"},
			},
			false,
		},
		{
			"gradient op wrong outputs",
			OperatorDef{
				Type:    "SpatialBNGradient",
				Inputs:  []string{"X", "scale", "dY", "mean", "inv_std"},
				Outputs: []string{"dX"},
			},
			true,
		},
		{
			"forward op inference arity",
			OperatorDef{
				Type:    "SpatialBN",
				Inputs:  []string{"X", "scale", "bias", "mean", "var"},
				Outputs: []string{"Y"},
			},
			false,
		},
		{
			"forward op training arity",
			OperatorDef{
				Type:    "SpatialBN",
				Inputs:  []string{"X", "scale", "bias", "mean", "var"},
				Outputs: []string{"Y", "sm", "sv", "rm", "rv"},
			},
			false,
		},
		{
			"forward op bad outputs",
			OperatorDef{
				Type:    "SpatialBN",
				Inputs:  []string{"X", "scale", "bias", "mean", "var"},
				Outputs: []string{"Y", "sm"},
			},
			true,
		},
		{
			"unknown op",
			OperatorDef{Type: "NoSuchOp"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(&tt.def)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterSchema(t *testing.T) {
	RegisterSchema("testOnlySchema", Schema{NumInputs: []int{2}, NumOutputs: []int{1}})
	defer delete(schemas, "testOnlySchema")

	s, ok := GetSchema("testOnlySchema")
	assert.True(t, ok)
	assert.Equal(t, []int{2}, s.NumInputs)

	err := Verify(&OperatorDef{
		Type:    "testOnlySchema",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"c"},
	})
	assert.NoError(t, err)
}
