package validate

import (
	"testing"

	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/weaveerr"
)

func validAPI() *ir.Api {
	ret := ir.I32
	return &ir.Api{
		Version: "0.1.0",
		Modules: []ir.Module{
			{
				Name: "calculator",
				Functions: []ir.Function{
					{
						Name:    "add",
						Params:  []ir.Param{{Name: "a", Ty: ir.I32}, {Name: "b", Ty: ir.I32}},
						Returns: &ret,
					},
				},
				Errors: &ir.ErrorDomain{
					Name: "CalculatorError",
					Codes: []ir.ErrorCode{
						{Name: "DivisionByZero", Code: 2, Message: "division by zero"},
					},
				},
			},
		},
	}
}

func TestValidate_ValidAPI(t *testing.T) {
	if err := Validate(validAPI()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoModuleName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Name = "   "
	expectKind(t, api, weaveerr.KindNoModuleName)
}

func TestValidate_DuplicateModuleName(t *testing.T) {
	api := validAPI()
	api.Modules = append(api.Modules, api.Modules[0])
	expectKind(t, api, weaveerr.KindDuplicateModuleName)
}

func TestValidate_InvalidModuleName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Name = "123bad"
	expectKind(t, api, weaveerr.KindInvalidModuleName)
}

func TestValidate_ReservedModuleName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Name = "type"
	expectKind(t, api, weaveerr.KindReservedKeyword)
}

func TestValidate_DuplicateFunctionName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Functions = append(api.Modules[0].Functions, api.Modules[0].Functions[0])
	expectKind(t, api, weaveerr.KindDuplicateFunctionName)
}

func TestValidate_DuplicateParamName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Functions[0].Params[1].Name = "a"
	expectKind(t, api, weaveerr.KindDuplicateParamName)
}

func TestValidate_ReservedFunctionName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Functions[0].Name = "return"
	expectKind(t, api, weaveerr.KindReservedKeyword)
}

func TestValidate_AsyncNotSupported(t *testing.T) {
	api := validAPI()
	api.Modules[0].Functions[0].IsAsync = true
	expectKind(t, api, weaveerr.KindAsyncNotSupported)
}

func TestValidate_ErrorDomainMissingName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Errors.Name = ""
	expectKind(t, api, weaveerr.KindErrorDomainMissingName)
}

func TestValidate_DuplicateErrorName(t *testing.T) {
	api := validAPI()
	api.Modules[0].Errors.Codes = append(api.Modules[0].Errors.Codes, ir.ErrorCode{
		Name: "DivisionByZero", Code: 3, Message: "dup",
	})
	expectKind(t, api, weaveerr.KindDuplicateErrorName)
}

func TestValidate_DuplicateErrorCode(t *testing.T) {
	api := validAPI()
	api.Modules[0].Errors.Codes = append(api.Modules[0].Errors.Codes, ir.ErrorCode{
		Name: "Other", Code: 2, Message: "dup code",
	})
	expectKind(t, api, weaveerr.KindDuplicateErrorCode)
}

func TestValidate_InvalidErrorCode(t *testing.T) {
	api := validAPI()
	api.Modules[0].Errors.Codes[0].Code = 0
	expectKind(t, api, weaveerr.KindInvalidErrorCode)
}

func TestValidate_NameCollisionWithErrorDomain(t *testing.T) {
	api := validAPI()
	api.Modules[0].Errors.Name = "add"
	expectKind(t, api, weaveerr.KindNameCollisionWithErrDomain)
}

func expectKind(t *testing.T, api *ir.Api, want weaveerr.Kind) {
	t.Helper()
	err := Validate(api)
	if err == nil {
		t.Fatalf("expected error of kind %v, got nil", want)
	}
	werr, ok := err.(*weaveerr.Error)
	if !ok {
		t.Fatalf("expected *weaveerr.Error, got %T", err)
	}
	if werr.Kind != want {
		t.Fatalf("got kind %v, want %v", werr.Kind, want)
	}
}
