// Package mocks provides test doubles for the API ports.
//
// MockAccountAPI is generated with go.uber.org/mock (gomock). To regenerate
// after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockAccountAPI(ctrl)
//	api.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
//
// The list-shaped ports keep hand-written Func-field doubles instead; see
// doubles.go.
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_api_mock.go github.com/modista/modista-go/internal/ports AccountAPI
