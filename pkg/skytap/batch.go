package skytap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType    = errors.New("unsupported resource type")
	ErrUnsupportedOperationType   = errors.New("unsupported operation type")
	ErrInvalidDataTypeEnvironment = errors.New("invalid data type for environment operation")
	ErrInvalidDataTypeTemplate    = errors.New("invalid data type for template operation")
	ErrInvalidDataTypeUser        = errors.New("invalid data type for user operation")
)

// UpdateData carries the target ID together with the attribute updates for
// a batch update operation.
type UpdateData struct {
	ID      string
	Updates map[string]string
}

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "get"
	Resource string // "environment", "template", "user"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs independent client operations concurrently. Each
// operation remains a single round trip with the facade's usual error
// semantics; the executor adds no retries and shares no state between
// operations beyond the result slice.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// handleCrudOperation dispatches one operation to the matching function.
func handleCrudOperation(
	operation BatchOperation,
	createFunc func() (interface{}, error),
	updateFunc func() (interface{}, error),
	deleteFunc func() (interface{}, error),
	getFunc func() (interface{}, error),
) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	switch operation.Type {
	case "create":
		data, err := createFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "update":
		data, err := updateFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "delete":
		data, err := deleteFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "get":
		data, err := getFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	return result
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Resource {
	case "environment":
		return b.executeEnvironmentOperation(ctx, operation)
	case "template":
		return b.executeTemplateOperation(ctx, operation)
	case "user":
		return b.executeUserOperation(ctx, operation)
	default:
		return &BatchResult{
			ID:    operation.ID,
			Error: fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource),
		}
	}
}

// executeEnvironmentOperation handles environment operations.
func (b *BatchExecutor) executeEnvironmentOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if templateID, ok := operation.Data.(string); ok {
				return b.client.Environments().Create(ctx, templateID)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeEnvironment)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateData); ok {
				return b.client.Environments().Update(ctx, data.ID, data.Updates)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeEnvironment)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				err := b.client.Environments().Delete(ctx, id)
				if err != nil {
					return nil, fmt.Errorf("failed to delete environment: %w", err)
				}

				return nil, nil
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeEnvironment)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Environments().Get(ctx, id)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeEnvironment)
		},
	)
}

// executeTemplateOperation handles template operations.
func (b *BatchExecutor) executeTemplateOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeTemplate)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateData); ok {
				return b.client.Templates().Update(ctx, data.ID, data.Updates)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeTemplate)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				err := b.client.Templates().Delete(ctx, id)
				if err != nil {
					return nil, fmt.Errorf("failed to delete template: %w", err)
				}

				return nil, nil
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeTemplate)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Templates().Get(ctx, id)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeTemplate)
		},
	)
}

// executeUserOperation handles user operations.
func (b *BatchExecutor) executeUserOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if req, ok := operation.Data.(*CreateUserRequest); ok {
				return b.client.Users().Create(ctx, req)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeUser)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateData); ok {
				return b.client.Users().Update(ctx, data.ID, data.Updates)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeUser)
		},
		func() (interface{}, error) {
			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeUser)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Users().Get(ctx, id)
			}

			return nil, fmt.Errorf("%w get", ErrInvalidDataTypeUser)
		},
	)
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddGetEnvironment adds an environment get operation.
func (b *BatchBuilder) AddGetEnvironment(id, environmentID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "get",
		Resource: "environment",
		Data:     environmentID,
	})

	return b
}

// AddCreateEnvironment adds an environment creation from a template.
func (b *BatchBuilder) AddCreateEnvironment(id, templateID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "environment",
		Data:     templateID,
	})

	return b
}

// AddUpdateEnvironment adds an environment update operation.
func (b *BatchBuilder) AddUpdateEnvironment(id, environmentID string, updates map[string]string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "update",
		Resource: "environment",
		Data: &UpdateData{
			ID:      environmentID,
			Updates: updates,
		},
	})

	return b
}

// AddDeleteEnvironment adds an environment deletion operation.
func (b *BatchBuilder) AddDeleteEnvironment(id, environmentID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "delete",
		Resource: "environment",
		Data:     environmentID,
	})

	return b
}

// AddGetTemplate adds a template get operation.
func (b *BatchBuilder) AddGetTemplate(id, templateID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "get",
		Resource: "template",
		Data:     templateID,
	})

	return b
}

// AddGetUser adds a user get operation.
func (b *BatchBuilder) AddGetUser(id, userID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "get",
		Resource: "user",
		Data:     userID,
	})

	return b
}

// AddCreateUser adds a user creation operation.
func (b *BatchBuilder) AddCreateUser(id string, request *CreateUserRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "user",
		Data:     request,
	})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
