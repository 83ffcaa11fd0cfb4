// internal/infrastructure/database/postgres/seed.go
package postgres

import (
	"github.com/romawatches/storefront/internal/domain/product"
	"github.com/shopspring/decimal"
)

func atm(v int) *int { return &v }

// seedCatalogue returns the starter watch catalogue. Prices are VND.
func seedCatalogue() []product.Product {
	return []product.Product{
		{
			Name:               "Seamaster Diver 300M",
			Brand:              "Omega",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "42mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "60 giờ",
			WaterResistance:    "300m",
			WaterResistanceAtm: atm(20),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(3500000),
			ImageURL:           "https://images.unsplash.com/photo-1523170335258-f5ed11844a49",
			Description:        "Đồng hồ lặn biểu tượng của Omega",
		},
		{
			Name:               "Submariner Date",
			Brand:              "Rolex",
			CaseMaterial:       "Thép Oystersteel",
			CaseDiameter:       "41mm",
			Dial:               "Đen",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "70 giờ",
			WaterResistance:    "300m",
			WaterResistanceAtm: atm(20),
			Crystal:            "Sapphire chống xước",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(8500000),
			ImageURL:           "https://images.unsplash.com/photo-1523170335258-f5ed11844a49",
			Description:        "Đồng hồ lặn huyền thoại của Rolex",
		},
		{
			Name:               "Nautilus 5711",
			Brand:              "Patek Philippe",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "40mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "45 giờ",
			WaterResistance:    "120m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(95000000),
			ImageURL:           "https://images.unsplash.com/photo-1587836374616-0f4a2f6c8e1d",
			Description:        "Biểu tượng sang trọng thể thao của Patek Philippe",
		},
		{
			Name:               "Royal Oak 15500ST",
			Brand:              "Audemars Piguet",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "41mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "60 giờ",
			WaterResistance:    "50m",
			WaterResistanceAtm: atm(5),
			Crystal:            "Sapphire chống lóa",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(72000000),
			ImageURL:           "https://images.unsplash.com/photo-1594534475808-b18fc33b045e",
			Description:        "Thiết kế biểu tượng với vỏ bát giác",
		},
		{
			Name:               "Santos de Cartier",
			Brand:              "Cartier",
			CaseMaterial:       "Thép và vàng",
			CaseDiameter:       "39.8mm",
			Dial:               "Trắng",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "48 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Đôi",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(15500000),
			ImageURL:           "https://images.unsplash.com/photo-1523170335258-f5ed11844a49",
			Description:        "Đồng hồ bay đầu tiên của thế giới",
		},
		{
			Name:               "Big Bang Unico",
			Brand:              "Hublot",
			CaseMaterial:       "Ceramic",
			CaseDiameter:       "45mm",
			Dial:               "Đen",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "72 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Dây silicone",
			Price:              decimal.NewFromInt(39500000),
			ImageURL:           "https://images.unsplash.com/photo-1622434641406-a158123450f9",
			Description:        "Thiết kế táo bạo và hiện đại",
		},
		{
			Name:               "Speedmaster Professional",
			Brand:              "Omega",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "42mm",
			Dial:               "Đen",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "48 giờ",
			WaterResistance:    "50m",
			WaterResistanceAtm: atm(5),
			Crystal:            "Hesalite",
			Gender:             "Nam",
			StrapType:          "Dây dù",
			Price:              decimal.NewFromInt(4500000),
			ImageURL:           "https://images.unsplash.com/photo-1614164185128-e4ec99c436d7",
			Description:        "Moonwatch - Đồng hồ lên mặt trăng",
		},
		{
			Name:               "Daytona Cosmograph",
			Brand:              "Rolex",
			CaseMaterial:       "Vàng Everose",
			CaseDiameter:       "40mm",
			Dial:               "Chocolate",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "72 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire chống xước",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(85000000),
			ImageURL:           "https://images.unsplash.com/photo-1587836374616-0f4a2f6c8e1d",
			Description:        "Đồng hồ đua xe huyền thoại",
		},
		{
			Name:               "Lady-Datejust",
			Brand:              "Rolex",
			CaseMaterial:       "Vàng trắng",
			CaseDiameter:       "28mm",
			Dial:               "Hồng perlamut",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "55 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(32000000),
			ImageURL:           "https://images.unsplash.com/photo-1594576722512-582bcd46fba3",
			Description:        "Đồng hồ nữ sang trọng của Rolex",
		},
		{
			Name:               "Oyster Perpetual",
			Brand:              "Rolex",
			CaseMaterial:       "Thép Oystersteel",
			CaseDiameter:       "36mm",
			Dial:               "Xanh lá cây",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "70 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Đôi",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(16500000),
			ImageURL:           "https://images.unsplash.com/photo-1524805444758-089113d48a6d",
			Description:        "Đồng hồ cổ điển với mặt số màu sắc",
		},
		{
			Name:               "Constellation Manhattan",
			Brand:              "Omega",
			CaseMaterial:       "Vàng và thép",
			CaseDiameter:       "29mm",
			Dial:               "Trắng ngọc trai",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "55 giờ",
			WaterResistance:    "50m",
			WaterResistanceAtm: atm(5),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(18500000),
			ImageURL:           "https://images.unsplash.com/photo-1611694517597-0a2542664fd5",
			Description:        "Đồng hồ nữ tinh tế với kim cương",
		},
		{
			Name:               "Tank Must",
			Brand:              "Cartier",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "33.7mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "38 giờ",
			WaterResistance:    "30m",
			WaterResistanceAtm: atm(3),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(7800000),
			ImageURL:           "https://images.unsplash.com/photo-1532667449560-72a95c8d381b",
			Description:        "Thiết kế hình chữ nhật biểu tượng",
		},
		{
			Name:               "Ballon Bleu",
			Brand:              "Cartier",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "36mm",
			Dial:               "Bạc guilloche",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "42 giờ",
			WaterResistance:    "30m",
			WaterResistanceAtm: atm(3),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(12500000),
			ImageURL:           "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338",
			Description:        "Mặt số cong độc đáo với xanh Cartier",
		},
		{
			Name:               "Classic Fusion",
			Brand:              "Hublot",
			CaseMaterial:       "Titanium",
			CaseDiameter:       "42mm",
			Dial:               "Đen skeleton",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "42 giờ",
			WaterResistance:    "50m",
			WaterResistanceAtm: atm(5),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(24500000),
			ImageURL:           "https://images.unsplash.com/photo-1547996160-81dfa63595aa",
			Description:        "Thiết kế thanh lịch với vỏ titanium",
		},
		{
			Name:               "Calatrava",
			Brand:              "Patek Philippe",
			CaseMaterial:       "Vàng trắng",
			CaseDiameter:       "39mm",
			Dial:               "Trắng",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "65 giờ",
			WaterResistance:    "30m",
			WaterResistanceAtm: atm(3),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(67500000),
			ImageURL:           "https://images.unsplash.com/photo-1509048191080-d2984bad6ae5",
			Description:        "Đồng hồ dress watch cổ điển nhất",
		},
		{
			Name:               "Royal Oak Offshore",
			Brand:              "Audemars Piguet",
			CaseMaterial:       "Ceramic",
			CaseDiameter:       "44mm",
			Dial:               "Đen Méga Tapisserie",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "65 giờ",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire chống lóa",
			Gender:             "Nam",
			StrapType:          "Dây dù",
			Price:              decimal.NewFromInt(89000000),
			ImageURL:           "https://images.unsplash.com/photo-1622434641406-a158123450f9",
			Description:        "Phiên bản thể thao mạnh mẽ của Royal Oak",
		},
		{
			Name:               "Aqua Terra 150M",
			Brand:              "Omega",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "38mm",
			Dial:               "Xanh dương teak",
			Movement:           "Đồng hồ cơ",
			PowerReserve:       "55 giờ",
			WaterResistance:    "150m",
			WaterResistanceAtm: atm(15),
			Crystal:            "Sapphire",
			Gender:             "Đôi",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(6800000),
			ImageURL:           "https://images.unsplash.com/photo-1533139502658-0198f920d8e8",
			Description:        "Đồng hồ thể thao thanh lịch hàng ngày",
		},
		{
			Name:               "Oysterquartz Datejust",
			Brand:              "Rolex",
			CaseMaterial:       "Thép Oystersteel",
			CaseDiameter:       "36mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 5 năm",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(12000000),
			ImageURL:           "https://images.unsplash.com/photo-1524805444758-089113d48a6d",
			Description:        "Đồng hồ quartz chính xác cao của Rolex",
		},
		{
			Name:               "Seamaster Aqua Terra Quartz",
			Brand:              "Omega",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "38mm",
			Dial:               "Trắng",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 4 năm",
			WaterResistance:    "150m",
			WaterResistanceAtm: atm(15),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(7500000),
			ImageURL:           "https://images.unsplash.com/photo-1533139502658-0198f920d8e8",
			Description:        "Đồng hồ quartz nữ thanh lịch",
		},
		{
			Name:               "Tank Solo Quartz",
			Brand:              "Cartier",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "31mm",
			Dial:               "Trắng",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 3 năm",
			WaterResistance:    "30m",
			WaterResistanceAtm: atm(3),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(4200000),
			ImageURL:           "https://images.unsplash.com/photo-1532667449560-72a95c8d381b",
			Description:        "Thiết kế cổ điển với bộ máy quartz",
		},
		{
			Name:               "Big Bang Quartz",
			Brand:              "Hublot",
			CaseMaterial:       "Ceramic",
			CaseDiameter:       "41mm",
			Dial:               "Đen",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 3 năm",
			WaterResistance:    "100m",
			WaterResistanceAtm: atm(10),
			Crystal:            "Sapphire",
			Gender:             "Nam",
			StrapType:          "Dây silicone",
			Price:              decimal.NewFromInt(28000000),
			ImageURL:           "https://images.unsplash.com/photo-1622434641406-a158123450f9",
			Description:        "Thiết kế hiện đại với bộ máy quartz",
		},
		{
			Name:               "Royal Oak Quartz",
			Brand:              "Audemars Piguet",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "33mm",
			Dial:               "Xanh dương",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 4 năm",
			WaterResistance:    "50m",
			WaterResistanceAtm: atm(5),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Thép không rỉ",
			Price:              decimal.NewFromInt(18500000),
			ImageURL:           "https://images.unsplash.com/photo-1594534475808-b18fc33b045e",
			Description:        "Royal Oak phiên bản quartz nữ",
		},
		{
			Name:               "Twenty-4 Quartz",
			Brand:              "Patek Philippe",
			CaseMaterial:       "Thép không gỉ",
			CaseDiameter:       "30mm",
			Dial:               "Trắng ngọc trai",
			Movement:           "Đồng hồ điện tử",
			PowerReserve:       "Pin 3 năm",
			WaterResistance:    "30m",
			WaterResistanceAtm: atm(3),
			Crystal:            "Sapphire",
			Gender:             "Nữ",
			StrapType:          "Dây da",
			Price:              decimal.NewFromInt(55000000),
			ImageURL:           "https://images.unsplash.com/photo-1509048191080-d2984bad6ae5",
			Description:        "Đồng hồ nữ sang trọng với bộ máy quartz",
		},
	}
}
