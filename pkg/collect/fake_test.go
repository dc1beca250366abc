package collect

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// fakeAPI serves paged exports and imports from memory.
type fakeAPI struct {
	// exports holds one slice per ListExports page.
	exports [][]types.Export
	// imports maps an export to its pages of importing stacks.
	imports map[string][][]string
	// failures maps an export to the error ListImports returns for it.
	failures map[string]error
	listErr  error

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeAPI) ListExports(ctx context.Context, in *cloudformation.ListExportsInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListExportsOutput, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := pageIndex(in.NextToken)
	out := &cloudformation.ListExportsOutput{}
	if page < len(f.exports) {
		out.Exports = f.exports[page]
	}
	if page+1 < len(f.exports) {
		out.NextToken = aws.String(strconv.Itoa(page + 1))
	}
	return out, nil
}

func (f *fakeAPI) ListImports(ctx context.Context, in *cloudformation.ListImportsInput, _ ...func(*cloudformation.Options)) (*cloudformation.ListImportsOutput, error) {
	name := aws.ToString(in.ExportName)
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.failures[name]; ok {
		return nil, err
	}
	pages := f.imports[name]
	if len(pages) == 0 {
		return nil, notImported(name)
	}
	page := pageIndex(in.NextToken)
	out := &cloudformation.ListImportsOutput{Imports: pages[page]}
	if page+1 < len(pages) {
		out.NextToken = aws.String(strconv.Itoa(page + 1))
	}
	return out, nil
}

func (f *fakeAPI) callCount(export string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[export]
}

func pageIndex(token *string) int {
	if token == nil {
		return 0
	}
	n, _ := strconv.Atoi(*token)
	return n
}

func notImported(export string) error {
	return &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Export '" + export + "' is not imported by any stack.",
	}
}

func export(stack, name, value string) types.Export {
	return types.Export{
		ExportingStackId: aws.String("arn:aws:cloudformation:us-east-1:123456789012:stack/" + stack + "/0d7c0d40-0000-0000-0000-000000000000"),
		Name:             aws.String(name),
		Value:            aws.String(value),
	}
}
