package dto

import (
	"testing"

	"gameshop_commerce/core/global"

	"github.com/stretchr/testify/require"
)

func validOrderInput() OrderCreateInput {
	return OrderCreateInput{
		CustomerName:  "Ram Sharma",
		CustomerPhone: "9812345678",
		Items: []OrderItemInput{
			{Name: "UC Pack", Price: 750, Quantity: 2, Variation: "660 UC"},
		},
		TotalAmount: 1500,
	}
}

func TestOrderCreateInputValidation(t *testing.T) {
	global.InitValidator()

	cases := []struct {
		name    string
		mutate  func(*OrderCreateInput)
		wantErr bool
	}{
		{"input hợp lệ", func(in *OrderCreateInput) {}, false},
		{"số lượng bỏ trống hợp lệ", func(in *OrderCreateInput) { in.Items[0].Quantity = 0 }, false},
		{"tổng tiền 0 hợp lệ", func(in *OrderCreateInput) { in.TotalAmount = 0 }, false},
		{"email bỏ trống hợp lệ", func(in *OrderCreateInput) { in.CustomerEmail = "" }, false},
		{"số lượng âm bị từ chối", func(in *OrderCreateInput) { in.Items[0].Quantity = -1 }, true},
		{"đơn giá âm bị từ chối", func(in *OrderCreateInput) { in.Items[0].Price = -10 }, true},
		{"tổng tiền âm bị từ chối", func(in *OrderCreateInput) { in.TotalAmount = -1 }, true},
		{"thiếu tên khách bị từ chối", func(in *OrderCreateInput) { in.CustomerName = "" }, true},
		{"thiếu danh sách hàng bị từ chối", func(in *OrderCreateInput) { in.Items = nil }, true},
		{"thiếu tên sản phẩm bị từ chối", func(in *OrderCreateInput) { in.Items[0].Name = "" }, true},
		{"email sai định dạng bị từ chối", func(in *OrderCreateInput) { in.CustomerEmail = "not-an-email" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validOrderInput()
			tc.mutate(&input)

			err := global.Validate.Struct(input)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
