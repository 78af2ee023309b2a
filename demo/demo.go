// Package demo seeds the store with the fixed demo catalogue used for
// showcasing the kiosk. Loading overwrites the target slots entirely, it is
// a destructive reset, not an additive seed.
package demo

import (
	"context"
	"time"

	"thochu/models"
	"thochu/store"
)

func now() string { return models.Timestamp(time.Now()) }

func daysAgo(n int) string {
	return models.Timestamp(time.Now().Add(-time.Duration(n) * 24 * time.Hour))
}

func hoursAgo(n int) string {
	return models.Timestamp(time.Now().Add(-time.Duration(n) * time.Hour))
}

func daysAhead(n int) string {
	return time.Now().Add(time.Duration(n) * 24 * time.Hour).UTC().Format("2006-01-02")
}

// LoadServices overwrites the services, reviews and bookings slots with the
// demo catalogue: 16 listings (4 restaurants, 4 hotels, 3 vehicles, 5 tours),
// 31 reviews skewed 4-5 stars, 6 bookings in mixed statuses.
func LoadServices(ctx context.Context, s *store.Store) error {
	if err := s.ReplaceServices(ctx, Services()); err != nil {
		return err
	}
	if err := s.ReplaceReviews(ctx, Reviews()); err != nil {
		return err
	}
	return s.ReplaceBookings(ctx, Bookings())
}

// LoadVisitors overwrites the visitor log with five demo check-ins.
func LoadVisitors(ctx context.Context, s *store.Store) error {
	return s.ReplaceVisitors(ctx, Visitors())
}

func Services() []models.ServicePost {
	return []models.ServicePost{
		// Restaurants
		{
			ID: "service-1", Category: models.CategoryRestaurant,
			Title:       "Nhà Hàng Hải Sản Bãi Đá",
			Description: "Hải sản tươi sống đánh bắt hàng ngày. Chuyên các món: tôm hùm nướng, cua hoàng đế, mực nhồi thịt, ghẹ hấp bia. View biển tuyệt đẹp, phục vụ nhiệt tình, không gian thoáng mát.",
			Images: []string{
				"https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800",
				"https://images.unsplash.com/photo-1535850117992-1a5d3a7d855b?w=800",
			},
			Price: "200.000đ - 500.000đ/người", Contact: "0987654321", Location: "Bãi Đá, Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-2", Category: models.CategoryRestaurant,
			Title:       "Quán Ốc Đêm Thổ Chu",
			Description: "Quán ốc chuyên các món nhậu, ốc luộc, ốc hấp sa tế, ốc xào dừa. Giá bình dân, phục vụ từ 6pm đến 12am. Không gian vui vẻ, phù hợp nhóm bạn.",
			Images:      []string{"https://images.unsplash.com/photo-1534422298391-e4f8c172dddb?w=800"},
			Price:       "50.000đ - 200.000đ/người", Contact: "0976543210", Location: "Chợ Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-3", Category: models.CategoryRestaurant,
			Title:       "Cơm Niêu Mẹ Út",
			Description: "Cơm niêu truyền thống, cá nướng, canh chua. Món ăn gia đình đậm đà hương vị miền Tây. Giá rẻ, phần nhiều, phục vụ nhanh.",
			Images:      []string{"https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=800"},
			Price:       "60.000đ - 120.000đ/người", Contact: "0965432109", Location: "Trung tâm đảo",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-4", Category: models.CategoryRestaurant,
			Title:       "Café Sóng Biển",
			Description: "Quán cà phê view biển cực đẹp. Chuyên cà phê phin, sinh tố trái cây tươi, bánh ngọt tự làm. Không gian yên tĩnh, thích hợp ngồi chill và ngắm hoàng hôn.",
			Images: []string{
				"https://images.unsplash.com/photo-1559925393-8be0ec4767c8?w=800",
				"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800",
			},
			Price: "25.000đ - 70.000đ/món", Contact: "0954321098", Location: "Bãi biển chính",
			CreatedAt: now(), UpdatedAt: now(),
		},

		// Hotels
		{
			ID: "service-5", Category: models.CategoryHotel,
			Title:       "Khách Sạn Thổ Chu Ocean View",
			Description: "Khách sạn 3 sao với 20 phòng tiện nghi hiện đại, điều hòa, nước nóng, TV, minibar. Tất cả phòng đều có view biển tuyệt đẹp. Bao gồm bữa sáng buffet phong phú.",
			Images: []string{
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800",
			},
			Price: "800.000đ - 1.500.000đ/đêm", Contact: "0912345678", Location: "Trung tâm đảo Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-6", Category: models.CategoryHotel,
			Title:       "Homestay Bình Yên",
			Description: "Homestay gia đình ấm cúng với 6 phòng. Thiết kế gần gũi thiên nhiên, sân vườn rộng, có võng để thư giãn. Chủ nhà thân thiện, tư vấn địa điểm tham quan.",
			Images:      []string{"https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=800"},
			Price:       "400.000đ - 600.000đ/đêm", Contact: "0923456789", Location: "Gần chợ Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-7", Category: models.CategoryHotel,
			Title:       "Resort Hòn Đá Bạc",
			Description: "Resort cao cấp ngay sát bãi biển đẹp nhất. 15 bungalow view biển, hồ bơi, nhà hàng, bar. Dịch vụ 5 sao, hoàn hảo cho honeymoon và nghỉ dưỡng sang trọng.",
			Images: []string{
				"https://images.unsplash.com/photo-1540541338287-41700207dee6?w=800",
				"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800",
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			},
			Price: "2.500.000đ - 4.000.000đ/đêm", Contact: "0934567890", Location: "Khu vực Hòn Đá Bạc",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-8", Category: models.CategoryHotel,
			Title:       "Nhà Nghỉ Biển Xanh",
			Description: "Nhà nghỉ bình dân sạch sẽ, giá rẻ. 10 phòng có điều hòa, wifi miễn phí. Thích hợp cho du khách tiết kiệm, gia đình nhỏ. Gần chợ, thuận tiện đi lại.",
			Images:      []string{"https://images.unsplash.com/photo-1568495248636-6432b97bd949?w=800"},
			Price:       "250.000đ - 400.000đ/đêm", Contact: "0945678901", Location: "Gần bến cảng",
			CreatedAt: now(), UpdatedAt: now(),
		},

		// Vehicles
		{
			ID: "service-9", Category: models.CategoryVehicle,
			Title:       "Thuê Xe Máy Thổ Chu",
			Description: "Cho thuê xe máy tay ga mới, giá rẻ nhất đảo. Giao xe tận nơi miễn phí. Hỗ trợ bản đồ và tư vấn lộ trình tham quan. Xe Vision, Air Blade, SH đều có.",
			Images:      []string{"https://images.unsplash.com/photo-1558981403-c5f9899a28bc?w=800"},
			Price:       "150.000đ/ngày", Contact: "0909876543", Location: "Cảng Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-10", Category: models.CategoryVehicle,
			Title:       "Thuê Xe Đạp Điện",
			Description: "Cho thuê xe đạp điện để khám phá đảo. Thân thiện môi trường, tiết kiệm. Có mũ bảo hiểm, sạc pin miễn phí. Giá ưu đãi cho thuê cả ngày.",
			Images:      []string{},
			Price:       "100.000đ/ngày", Contact: "0956789012", Location: "Trung tâm đảo",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-11", Category: models.CategoryVehicle,
			Title:       "Thuê Ô Tô 4 Chỗ",
			Description: "Cho thuê ô tô 4 chỗ tự lái hoặc có tài xế. Xe mới, máy lạnh, đầy đủ giấy tờ bảo hiểm. Phù hợp gia đình, nhóm bạn. Có ghế trẻ em.",
			Images:      []string{"https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?w=800"},
			Price:       "800.000đ/ngày (tự lái) - 1.200.000đ/ngày (có tài)", Contact: "0967890123", Location: "Cảng Thổ Chu",
			CreatedAt: now(), UpdatedAt: now(),
		},

		// Tours
		{
			ID: "service-12", Category: models.CategoryTour,
			Title:       "Tour Khám Phá Đảo Thổ Chu",
			Description: "Tour 1 ngày tham quan toàn bộ đảo: Hòn Đá Bạc, rừng thông biển, ngọn hải đăng, bãi biển hoang sơ, làng chài. Bao gồm: xe đưa đón, hướng dẫn viên nhiệt tình, bữa trưa hải sản, nước uống.",
			Images: []string{
				"https://images.unsplash.com/photo-1506929562872-bb421503ef21?w=800",
				"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
			},
			Price: "500.000đ/người", Contact: "0898765432", Location: "Khởi hành từ cảng",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-13", Category: models.CategoryTour,
			Title:       "Tour Lặn Ngắm San Hô",
			Description: "Trải nghiệm lặn biển ngắm san hô đa dạng màu sắc và sinh vật biển. Cung cấp đầy đủ thiết bị lặn, áo phao, hướng dẫn viên chuyên nghiệp có chứng chỉ. Phù hợp cho người mới. Thời gian: 3-4 giờ.",
			Images: []string{
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
				"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
			},
			Price: "600.000đ/người", Contact: "0887654321", Location: "Vùng biển Hòn Đá Bạc",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-14", Category: models.CategoryTour,
			Title:       "Tour Câu Cá & BBQ Trên Biển",
			Description: "Tour nửa ngày câu cá trên thuyền, sau đó nướng BBQ ngay trên biển. Thuyền đầy đủ trang thiết bị câu cá, có hướng dẫn. BBQ hải sản tươi sống vừa câu được. Trải nghiệm độc đáo!",
			Images:      []string{"https://images.unsplash.com/photo-1563299796-17596ed6b017?w=800"},
			Price:       "450.000đ/người", Contact: "0876543210", Location: "Bến tàu du lịch",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-15", Category: models.CategoryTour,
			Title:       "Tour Ngắm Bình Minh & Chụp Ảnh",
			Description: "Tour sớm 4:30am đi ngắm bình minh tại điểm đẹp nhất đảo. Hướng dẫn viên kiêm nhiếp ảnh gia chụp ảnh miễn phí cho bạn. Phù hợp cho các cặp đôi, người yêu thiên nhiên. Kèm bữa sáng nhẹ.",
			Images:      []string{"https://images.unsplash.com/photo-1495954484750-af469f2f9be5?w=800"},
			Price:       "350.000đ/người", Contact: "0865432109", Location: "Khởi hành từ khách sạn",
			CreatedAt: now(), UpdatedAt: now(),
		},
		{
			ID: "service-16", Category: models.CategoryTour,
			Title:       "Tour Đảo Hoang 2 Ngày 1 Đêm",
			Description: "Tour phượt đảo hoang gần Thổ Chu. Camping qua đêm, lửa trại, câu cá, nướng BBQ, ngắm sao đêm. Trải nghiệm sống hòa mình với thiên nhiên. Phù hợp nhóm bạn trẻ, người thích phiêu lưu.",
			Images: []string{
				"https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800",
				"https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?w=800",
			},
			Price: "1.200.000đ/người", Contact: "0854321098", Location: "Bến cảng chính",
			CreatedAt: now(), UpdatedAt: now(),
		},
	}
}

func Reviews() []models.Review {
	return []models.Review{
		{ID: "review-1", ServiceID: "service-1", UserName: "Nguyễn Văn Anh", Rating: 5, Comment: "Hải sản tươi ngon không tưởng! Tôm hùm nướng mỡ hành ăn mê luôn. Giá cả hợp lý so với chất lượng. View biển đẹp, phục vụ nhiệt tình. 10/10 sẽ quay lại!", CreatedAt: daysAgo(2)},
		{ID: "review-2", ServiceID: "service-1", UserName: "Trần Thị Mai", Rating: 5, Comment: "Lần đầu ăn cua hoàng đế ngon đến thế. Mực nhồi thịt cũng tuyệt vời. Nhân viên dễ thương, tư vấn món ăn rất chi tiết. Không gian sạch sẽ, view đẹp!", CreatedAt: daysAgo(5)},
		{ID: "review-3", ServiceID: "service-1", UserName: "Lê Minh Tuấn", Rating: 4, Comment: "Hải sản tươi, đồ ăn ngon. Có điều hơi đông khách nên phải đợi lâu một chút. Nên đặt bàn trước. Nhưng nhìn chung rất đáng để thử!", CreatedAt: daysAgo(7)},
		{ID: "review-4", ServiceID: "service-1", UserName: "Phạm Thu Hà", Rating: 5, Comment: "Gia đình mình 6 người ăn rất no nê, bill khoảng 2tr. So với Hà Nội thì rẻ hơn nhiều mà chất lượng vượt trội. Ghẹ hấp bia quá đỉnh!", CreatedAt: daysAgo(10)},
		{ID: "review-5", ServiceID: "service-2", UserName: "Hoàng Văn Nam", Rating: 5, Comment: "Quán ốc ngon bổ rẻ! Ốc hương xào sa tế cay nồng ăn hoài không chán. Giá siêu rẻ, nhậu nhẹt tốn có 300k/4 người. Quán đông vui, không khí sôi động!", CreatedAt: daysAgo(1)},
		{ID: "review-6", ServiceID: "service-2", UserName: "Võ Thị Lan", Rating: 4, Comment: "Ốc tươi, giá tốt. Không gian hơi chật khi đông khách nhưng vẫn ok. Ốc luộc, ốc hấp đều ngon. Phù hợp cho các bạn trẻ thích nhậu.", CreatedAt: daysAgo(3)},
		{ID: "review-7", ServiceID: "service-4", UserName: "Đỗ Minh Châu", Rating: 5, Comment: "Quán cà phê view đẹp nhất đảo! Ngồi chill ngắm hoàng hôn quá lãng mạn. Cà phê phin ngon, sinh tố bơ sánh mịn. Giá hợp lý. Phục vụ chu đáo!", CreatedAt: daysAgo(4)},
		{ID: "review-8", ServiceID: "service-4", UserName: "Bùi Thanh Tùng", Rating: 5, Comment: "Không gian yên tĩnh, thoải mái. Ngồi làm việc remote cả ngày mà không thấy nhàm. Có wifi mạnh, điện đầy đủ. Đồ uống ngon, nhân viên dễ thương!", CreatedAt: daysAgo(6)},
		{ID: "review-9", ServiceID: "service-5", UserName: "Ngô Thành Đạt", Rating: 5, Comment: "Khách sạn đẹp, phòng sạch sẽ, view biển tuyệt vời! Bữa sáng buffet đa dạng, đồ ăn ngon. Nhân viên chuyên nghiệp. Đáng giá tiền!", CreatedAt: daysAgo(8)},
		{ID: "review-10", ServiceID: "service-5", UserName: "Trương Thị Hương", Rating: 4, Comment: "Phòng đẹp, thoáng mát, giường ngủ êm. Wifi hơi yếu một chút nhưng chấp nhận được. Nhìn chung rất hài lòng. Phù hợp cho gia đình!", CreatedAt: daysAgo(9)},
		{ID: "review-11", ServiceID: "service-5", UserName: "Lý Quang Minh", Rating: 5, Comment: "Vợ chồng mình đi honeymoon, chọn khách sạn này quá đúng đắn. Phòng romantic, có ban công nhìn ra biển. Sáng ngắm bình minh siêu đẹp!", CreatedAt: daysAgo(12)},
		{ID: "review-12", ServiceID: "service-6", UserName: "Phan Văn Hải", Rating: 5, Comment: "Homestay rất ấm cúng như ở nhà. Chú chủ nhà thân thiện, tư vấn địa điểm tham quan nhiệt tình. Sân vườn đẹp, có võng nằm ngắm trời. Giá rẻ mà chất lượng tốt!", CreatedAt: daysAgo(11)},
		{ID: "review-13", ServiceID: "service-6", UserName: "Đinh Thị Trang", Rating: 5, Comment: "Chị chủ nấu ăn ngon lắm! Mình có đặt cơm tối ở đây. Không gian yên tĩnh, phù hợp để nghỉ ngơi thư giãn. Sẽ giới thiệu bạn bè!", CreatedAt: daysAgo(13)},
		{ID: "review-14", ServiceID: "service-7", UserName: "Vũ Minh Quân", Rating: 5, Comment: "Resort đẳng cấp 5 sao! Bungalow riêng tư, hồ bơi infinity view biển cực đỉnh. Nhà hàng món ngon, phục vụ chu đáo. Trải nghiệm tuyệt vời!", CreatedAt: daysAgo(14)},
		{ID: "review-15", ServiceID: "service-7", UserName: "Mai Hoàng Anh", Rating: 4, Comment: "Resort đẹp, sang trọng. Giá hơi cao nhưng xứng đáng. Phù hợp cho kỳ nghỉ đặc biệt. Bãi biển riêng rất sạch!", CreatedAt: daysAgo(15)},
		{ID: "review-16", ServiceID: "service-9", UserName: "Cao Văn Đức", Rating: 5, Comment: "Thuê xe rất tiện! Xe mới, giá rẻ. Chủ giao xe tận nơi và cho bản đồ kèm tư vấn lộ trình tham quan. Rất hài lòng!", CreatedAt: daysAgo(2)},
		{ID: "review-17", ServiceID: "service-9", UserName: "Hồ Thị Ngọc", Rating: 5, Comment: "Xe máy chạy êm, xăng đầy. Giá 150k/ngày rất ok. Chủ nhiệt tình, giải thích cách đi rất chi tiết. Sẽ thuê lại lần sau!", CreatedAt: daysAgo(5)},
		{ID: "review-18", ServiceID: "service-9", UserName: "Tô Minh Phương", Rating: 4, Comment: "Dịch vụ tốt, xe ổn. Có nhiều loại xe để chọn. Mình thuê SH rất đẹp. Giao trả xe linh hoạt!", CreatedAt: daysAgo(7)},
		{ID: "review-19", ServiceID: "service-12", UserName: "Dương Văn Sơn", Rating: 5, Comment: "Tour rất đáng tham gia! Đi hết các điểm đẹp trên đảo. Hướng dẫn viên anh Tú nhiệt tình, giải thích chi tiết. Bữa trưa hải sản ngon. Giá 500k quá hợp lý!", CreatedAt: daysAgo(3)},
		{ID: "review-20", ServiceID: "service-12", UserName: "Lưu Thị Hồng", Rating: 5, Comment: "Tour tuyệt vời! Đi hết các địa điểm nổi tiếng. Hòn Đá Bạc đẹp lung linh. Hải đăng view đỉnh của chóp. Nên đi tour này để nắm hết đảo!", CreatedAt: daysAgo(6)},
		{ID: "review-21", ServiceID: "service-12", UserName: "Đặng Quốc Tuấn", Rating: 5, Comment: "Cả gia đình 6 người đi tour rất vui. Trẻ con thích lắm. Hướng dẫn viên chăm sóc chu đáo. Lịch trình hợp lý, không vội vàng. Recommend!", CreatedAt: daysAgo(8)},
		{ID: "review-22", ServiceID: "service-12", UserName: "Nguyễn Thị Phương", Rating: 4, Comment: "Tour ok, đi nhiều địa điểm. Bữa trưa ngon. Chỉ có hơi mệt vì đi nhiều. Nhưng nhìn chung rất đáng!", CreatedAt: daysAgo(10)},
		{ID: "review-23", ServiceID: "service-13", UserName: "Hà Văn Long", Rating: 5, Comment: "Trải nghiệm lặn biển tuyệt vời! San hô đẹp, nhiều cá. Hướng dẫn viên hướng dẫn kỹ, an toàn. Lần đầu lặn mà mình không sợ. Thiết bị đầy đủ!", CreatedAt: daysAgo(4)},
		{ID: "review-24", ServiceID: "service-13", UserName: "Phan Thị Thanh", Rating: 5, Comment: "San hô đẹp không tưởng! Màu sắc rực rỡ, cá nhiều loại. Anh hướng dẫn có chứng chỉ quốc tế, rất chuyên nghiệp. Bảo đảm an toàn 100%!", CreatedAt: daysAgo(7)},
		{ID: "review-25", ServiceID: "service-13", UserName: "Lâm Minh Tâm", Rating: 4, Comment: "Lặn rất thú vị, nhìn được san hô đẹp. Có chút khó thở lúc đầu nhưng sau quen. Nước biển trong xanh. Nên thử!", CreatedAt: daysAgo(9)},
		{ID: "review-26", ServiceID: "service-14", UserName: "Trịnh Văn Hùng", Rating: 5, Comment: "Tour câu cá siêu vui! Nhóm mình câu được nhiều cá, mực. BBQ ngay trên thuyền quá đã. Bia lạnh, không khí vui vẻ. Trải nghiệm khó quên!", CreatedAt: daysAgo(5)},
		{ID: "review-27", ServiceID: "service-14", UserName: "Lê Thị Bích", Rating: 5, Comment: "Lần đầu đi câu cá trên biển. Rất hài lòng! Thuyền ổn định, có mái che. Nướng cá tươi vừa câu lên ngon không tả. Giá 450k rất hợp lý!", CreatedAt: daysAgo(8)},
		{ID: "review-28", ServiceID: "service-15", UserName: "Vương Thị Mai", Rating: 5, Comment: "Bình minh trên đảo Thổ Chu đẹp như tranh vẽ! Anh hướng dẫn viên chụp ảnh cho mình rất đẹp. 4:30 sáng dậy hơi mệt nhưng xứng đáng. Cặp đôi nên đi!", CreatedAt: daysAgo(3)},
		{ID: "review-29", ServiceID: "service-15", UserName: "Huỳnh Văn Thắng", Rating: 5, Comment: "Trải nghiệm lãng mạn! Ngắm mặt trời mọc, chụp ảnh đẹp. Bữa sáng bánh mì pate nóng hổi. Hướng dẫn dẫn đến điểm view cực đỉnh!", CreatedAt: daysAgo(6)},
		{ID: "review-30", ServiceID: "service-16", UserName: "Phạm Minh Tuấn", Rating: 5, Comment: "Tour phượt đỉnh của chóp! Camping trên đảo hoang, lửa trại, ngắm sao trời đêm. Trải nghiệm hoang dã thật sự. Phù hợp người thích phiêu lưu. Nhóm bạn mình 8 người vui lắm!", CreatedAt: daysAgo(12)},
		{ID: "review-31", ServiceID: "service-16", UserName: "Tạ Thị Hoa", Rating: 4, Comment: "Trải nghiệm mới mẻ! Ngủ lều, câu cá, BBQ, hát hò đêm. Hơi vất vả một chút nhưng rất đáng nhớ. Hướng dẫn viên nhiệt tình, chu đáo!", CreatedAt: daysAgo(14)},
	}
}

func Bookings() []models.TourBooking {
	return []models.TourBooking{
		{ID: "booking-1", ServiceID: "service-12", CustomerName: "Nguyễn Văn Hoàng", CustomerPhone: "0901234567", CustomerCCCD: "001234567890", TourDate: daysAhead(3), NumberOfPeople: 4, Notes: "Gia đình có 2 trẻ em 6 tuổi và 8 tuổi", Status: models.BookingConfirmed, CreatedAt: daysAgo(2)},
		{ID: "booking-2", ServiceID: "service-13", CustomerName: "Trần Thị Lan Anh", CustomerPhone: "0912345678", CustomerCCCD: "098765432101", TourDate: daysAhead(5), NumberOfPeople: 2, Notes: "Lần đầu lặn, cần hướng dẫn kỹ", Status: models.BookingPending, CreatedAt: daysAgo(1)},
		{ID: "booking-3", ServiceID: "service-14", CustomerName: "Lê Minh Đức", CustomerPhone: "0923456789", CustomerCCCD: "012345678902", TourDate: daysAhead(2), NumberOfPeople: 6, Notes: "Nhóm bạn 6 người, muốn tour buổi chiều", Status: models.BookingConfirmed, CreatedAt: daysAgo(3)},
		{ID: "booking-4", ServiceID: "service-15", CustomerName: "Phạm Thu Hương", CustomerPhone: "0934567890", CustomerCCCD: "087654321098", TourDate: daysAhead(1), NumberOfPeople: 2, Notes: "Cặp đôi honeymoon, cần photographer chụp ảnh đẹp", Status: models.BookingConfirmed, CreatedAt: daysAgo(1)},
		{ID: "booking-5", ServiceID: "service-16", CustomerName: "Hoàng Văn Thành", CustomerPhone: "0945678901", CustomerCCCD: "076543210987", TourDate: daysAhead(7), NumberOfPeople: 8, Notes: "Nhóm 8 người, có kinh nghiệm camping", Status: models.BookingPending, CreatedAt: now()},
		{ID: "booking-6", ServiceID: "service-12", CustomerName: "Võ Thị Kim Ngân", CustomerPhone: "0956789012", CustomerCCCD: "065432109876", TourDate: daysAhead(4), NumberOfPeople: 3, Notes: "3 người lớn, khởi hành buổi sáng", Status: models.BookingPending, CreatedAt: now()},
	}
}

func Visitors() []models.Visitor {
	mk := func(cccd, cmnd, name, sex, dob, addr, issued, temp, note, checkin string) models.Visitor {
		v := models.Visitor{TemporaryAddress: temp, Note: note, CheckInTime: checkin}
		v.CCCD = cccd
		v.CMND = cmnd
		v.FullName = name
		v.Sex = sex
		v.DateOfBirth = dob
		v.PermanentAddress = addr
		v.IssueDate = issued
		return v
	}
	return []models.Visitor{
		mk("062098001234", "233252111", "Nguyễn Văn An", "Nam", "15/05/1990", "123 Đường Lê Lợi, Phường 1, Quận 1, TP. Hồ Chí Minh", "01/01/2022", "Khách sạn Biển Xanh, Đảo Thổ Chu", "Du lịch gia đình, lưu trú 3 ngày 2 đêm", hoursAgo(1)),
		mk("079095002345", "212345222", "Trần Thị Bình", "Nữ", "20/08/1995", "456 Đường Trần Hưng Đạo, Phường Bến Thành, Quận 1, TP. Hồ Chí Minh", "15/03/2023", "Nhà nghỉ Hải Đăng, Đảo Thổ Chu", "Công tác và du lịch", hoursAgo(2)),
		mk("001088003456", "198765333", "Lê Minh Cường", "Nam", "10/12/1988", "789 Đường Nguyễn Huệ, Phường Bến Nghé, Quận 1, TP. Hồ Chí Minh", "20/06/2022", "Homestay Thổ Chu Paradise", "Nghỉ dưỡng cuối tuần", models.Timestamp(time.Now().Add(-30*time.Minute))),
		mk("024093004567", "187654444", "Phạm Thu Hà", "Nữ", "25/03/1993", "321 Đường Hai Bà Trưng, Phường Đa Kao, Quận 1, TP. Hồ Chí Minh", "10/09/2023", "Resort Đảo Ngọc", "Honeymoon, lưu trú 5 ngày", models.Timestamp(time.Now().Add(-90*time.Minute))),
		mk("036087005678", "176543555", "Hoàng Văn Đức", "Nam", "05/07/1987", "654 Đường Pasteur, Phường 6, Quận 3, TP. Hồ Chí Minh", "05/12/2021", "Khách sạn Sao Biển", "Chuyến công tác khảo sát", hoursAgo(3)),
	}
}
