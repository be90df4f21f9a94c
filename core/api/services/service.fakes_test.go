package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubBaseService giả lập BaseServiceMongo cho unit test, từng hàm gán qua field.
// Hàm không được gán trả về zero value để test chỉ phải khai báo phần mình cần.
type stubBaseService[T any] struct {
	insertOneFn      func(ctx context.Context, data T) (T, error)
	insertManyFn     func(ctx context.Context, data []T) ([]T, error)
	findOneFn        func(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error)
	findFn           func(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	updateOneFn      func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error)
	updateManyFn     func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error)
	deleteOneFn      func(ctx context.Context, filter interface{}) error
	deleteManyFn     func(ctx context.Context, filter interface{}) (int64, error)
	countDocumentsFn func(ctx context.Context, filter interface{}) (int64, error)
	findOneByIdFn    func(ctx context.Context, id string) (T, error)
	updateByIdFn     func(ctx context.Context, id string, data interface{}) (T, error)
	deleteByIdFn     func(ctx context.Context, id string) error
	upsertFn         func(ctx context.Context, filter interface{}, data interface{}) (T, error)
	documentExistsFn func(ctx context.Context, filter interface{}) (bool, error)
}

func (s *stubBaseService[T]) InsertOne(ctx context.Context, data T) (T, error) {
	if s.insertOneFn != nil {
		return s.insertOneFn(ctx, data)
	}
	return data, nil
}

func (s *stubBaseService[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if s.insertManyFn != nil {
		return s.insertManyFn(ctx, data)
	}
	return data, nil
}

func (s *stubBaseService[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	if s.findOneFn != nil {
		return s.findOneFn(ctx, filter, opts)
	}
	var zero T
	return zero, nil
}

func (s *stubBaseService[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if s.findFn != nil {
		return s.findFn(ctx, filter, opts)
	}
	return nil, nil
}

func (s *stubBaseService[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	if s.updateOneFn != nil {
		return s.updateOneFn(ctx, filter, update, opts)
	}
	var zero T
	return zero, nil
}

func (s *stubBaseService[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	if s.updateManyFn != nil {
		return s.updateManyFn(ctx, filter, update, opts)
	}
	return 0, nil
}

func (s *stubBaseService[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	if s.deleteOneFn != nil {
		return s.deleteOneFn(ctx, filter)
	}
	return nil
}

func (s *stubBaseService[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if s.deleteManyFn != nil {
		return s.deleteManyFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubBaseService[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if s.countDocumentsFn != nil {
		return s.countDocumentsFn(ctx, filter)
	}
	return 0, nil
}

func (s *stubBaseService[T]) FindOneById(ctx context.Context, id string) (T, error) {
	if s.findOneByIdFn != nil {
		return s.findOneByIdFn(ctx, id)
	}
	var zero T
	return zero, nil
}

func (s *stubBaseService[T]) UpdateById(ctx context.Context, id string, data interface{}) (T, error) {
	if s.updateByIdFn != nil {
		return s.updateByIdFn(ctx, id, data)
	}
	var zero T
	return zero, nil
}

func (s *stubBaseService[T]) DeleteById(ctx context.Context, id string) error {
	if s.deleteByIdFn != nil {
		return s.deleteByIdFn(ctx, id)
	}
	return nil
}

func (s *stubBaseService[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, filter, data)
	}
	var zero T
	return zero, nil
}

func (s *stubBaseService[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if s.documentExistsFn != nil {
		return s.documentExistsFn(ctx, filter)
	}
	return false, nil
}

// stubTakeAppClient giả lập TakeAppClient cho unit test
type stubTakeAppClient struct {
	createOrderFn func(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error)
}

func (s *stubTakeAppClient) CreateOrder(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
	return s.createOrderFn(ctx, payload)
}

func (s *stubTakeAppClient) GetStore(ctx context.Context) (map[string]interface{}, error) {
	return nil, nil
}

func (s *stubTakeAppClient) GetOrders(ctx context.Context) ([]map[string]interface{}, error) {
	return nil, nil
}

func (s *stubTakeAppClient) GetInventory(ctx context.Context) (interface{}, error) {
	return nil, nil
}

// stubTrustpilotFetcher giả lập TrustpilotFetcher cho unit test
type stubTrustpilotFetcher struct {
	reviews []RawReview
	buid    string
}

func (s *stubTrustpilotFetcher) FetchReviews(ctx context.Context) ([]RawReview, error) {
	return s.reviews, nil
}

func (s *stubTrustpilotFetcher) FindBusinessUnitID(ctx context.Context) (string, error) {
	return s.buid, nil
}
