package checklist

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, input AddInput) (PackingItem, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	SetPacked(ctx context.Context, input SetPackedInput) (PackingItem, error)
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
	Progress(ctx context.Context, input ProgressInput) (ProgressOutput, error)
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}
