package vocab

var builtinToxic = []string{
	"dm", "dkm", "vcl", "vl", "cc", "cl", "đụ", "địt", "lồn", "buồi", "cặc", "chó",
	"súc vật", "ngu", "óc chó", "điên", "khùng", "biến thái", "hãm", "phò", "đĩ", "cave",
	"giết", "đánh", "chém", "bắn", "tạt axit", "hiếp dâm", "ấu dâm", "phản động", "3 que",
	"đu càng", "bò đỏ", "cộng sản", "ngụy", "lừa đảo", "đa cấp", "cờ bạc", "cá độ", "lô đề",
	"xóc đĩa", "tài xỉu", "sex", "khiêu dâm", "loạn luân", "bú cu", "vú", "mông", "toang",
	"chết đi", "tự tử", "nhảy cầu", "uống thuốc sâu", "đm", "đkm", "vkl", "đcm", "đmm",
	"vãi", "đéo", "đếch", "mày", "tao", "nó", "chúng nó", "bọn mày", "lũ", "ngu như bò",
	"ăn hại", "vô dụng", "rác rưởi", "cặn bã", "bố mày", "ông nội mày", "cả lò nhà mày",
	"xạo lồn", "xạo chó", "bốc phét", "chém gió", "kèo bóng", "soi cầu", "bạch thủ",
	"lô xiên", "vay tiền", "bốc bát họ", "tín dụng đen", "thu hồi nợ", "đòi nợ thuê",
	"gái gọi", "check hàng", "massage a-z", "tay vịn", "thuốc kích dục",
	"đồ chơi người lớn", "sextoy", "hàng nóng", "hàng lạnh", "kẹo ke", "đá", "cỏ", "cần sa",
	"bay lắc", "phê pha", "ngáo", "trẻ trâu", "sửu nhi", "kỳ thị", "phân biệt vùng miền",
	"bắc kỳ", "nam kỳ", "trung kỳ", "tộc", "mọi", "thanh hóa", "nghệ an", "hà tĩnh",
	"bê đê", "bóng chó", "xăng pha nhớt", "gay", "les", "lgbt", "ngu học", "thất học",
	"vô học", "mất dạy", "mặt lồn", "mặt phụ khoa", "hãm lồn", "hãm cành cạch", "đụ má",
	"đụ mẹ", "địt mẹ", "địt cụ", "vãi lồn", "vãi cứt", "vãi đái", "như cái lồn",
	"như cái củ cặc", "cút", "biến", "xéo", "sml", "sấp mặt lồn", "atsm",
	"ảo tưởng sức mạnh", "gato", "ghen ăn tức ở", "chịch", "xoạc", "nện", "thông đít",
	"bóc phốt", "drama", "link sex", "link 18+", "full hd", "không che", "lộ clip",
	"clip nóng", "show hàng", "khoe thân", "tìm daddy", "tìm baby", "sgdd", "sgbb",
	"bao nuôi", "chu cấp", "tuyển nhân viên", "việc nhẹ lương cao", "nhập liệu", "xâu hạt",
	"gấp dán bao lì xì", "cộng tác viên", "shopee", "tiki", "lazada", "hoa hồng cao",
	"chiết khấu cao", "đầu tư", "sinh lời", "lợi nhuận khủng", "forex", "bitcoin",
	"tiền ảo", "sàn ảo", "sàn bo", "binary option", "hack", "cheat", "tool", "rip nick",
	"report", "dịch vụ facebook", "tăng like", "tăng follow", "chạy quảng cáo",
	"bán fanpage", "sim số đẹp", "phong thủy", "bùa ngải", "tâm linh", "trúng thưởng",
	"quà tặng", "tri ân", "miễn phí", "free", "ship cod", "kiểm hàng", "chính hãng",
	"xách tay", "fake", "rep 1:1", "thanh lý", "xả kho", "giá rẻ", "bom hàng", "bùng hàng",
	"phốt", "scam", "uy tín", "chất lượng", "đảm bảo", "inbox", "ib", "check ib", "kết bạn",
	"add friend", "zalo", "số điện thoại", "sđt", "hotline", "địa chỉ", "link", "website",
	"tải app", "cài đặt", "đăng ký", "mã giới thiệu", "ref", "livestream", "chia sẻ",
	"share", "minigame", "giveaway", "chấm", ".", "hóng",
}

var builtinClean = []string{
	"xin chào", "cảm ơn", "tạm biệt", "chúc mừng", "tuyệt vời", "hay quá", "đẹp quá",
	"ngon quá", "thích quá", "yêu quá", "vui vẻ", "hạnh phúc", "may mắn", "thành công",
	"sức khỏe", "bình an", "an khang", "thịnh vượng", "học tập", "làm việc", "nghiên cứu",
	"phát triển", "gia đình", "bạn bè", "người thân", "đồng nghiệp", "thầy cô", "cha mẹ",
	"ông bà", "con cái", "yêu thương", "quan tâm", "chia sẻ", "giúp đỡ", "đoàn kết",
	"hòa bình", "nhân ái", "từ bi", "trung thực", "thẳng thắn", "dũng cảm", "kiên trì",
	"sáng tạo", "đổi mới", "tiến bộ", "văn minh", "lịch sự", "tôn trọng", "khiêm tốn",
	"giản dị", "tiết kiệm", "bảo vệ môi trường", "thiên nhiên", "đất nước", "quê hương",
	"tổ quốc", "đồng bào", "văn hóa", "nghệ thuật", "âm nhạc", "thể thao", "du lịch",
	"ẩm thực", "thời trang", "làm đẹp", "công nghệ", "khoa học", "giáo dục", "y tế",
	"kinh tế", "chính trị", "xã hội", "pháp luật", "tin tức", "thời sự", "giải trí",
	"thư giãn", "sách", "truyện", "phim", "ảnh", "video", "bài viết", "bình luận", "ý kiến",
	"quan điểm", "thông tin", "kiến thức", "kinh nghiệm", "kỹ năng", "sản phẩm", "dịch vụ",
	"chất lượng", "giá cả", "khách hàng", "người dùng", "cộng đồng", "xã hội", "thời tiết",
	"khí hậu", "môi trường", "không gian", "thời gian", "quá khứ", "hiện tại", "tương lai",
	"cuộc sống", "con người", "thế giới", "vũ trụ", "tình yêu", "tình bạn", "tình thân",
	"tình người", "niềm vui", "nỗi buồn", "hy vọng", "ước mơ", "cố gắng", "nỗ lực",
	"phấn đấu", "vươn lên", "vượt qua", "chiến thắng", "thất bại", "bài học", "ý nghĩa",
	"giá trị", "mục đích", "lý tưởng", "tự do", "bình đẳng", "bác ái", "trách nhiệm",
	"nghĩa vụ", "quyền lợi", "pháp luật", "kỷ cương", "trật tự", "an toàn", "an ninh",
	"quốc phòng", "hòa bình", "hữu nghị", "hợp tác", "phát triển", "bền vững",
	"thịnh vượng", "văn minh", "hiện đại", "tiên tiến", "truyền thống", "bản sắc",
	"dân tộc", "lịch sử", "địa lý", "văn học", "toán học", "vật lý", "hóa học", "sinh học",
	"tin học", "ngoại ngữ", "tiếng việt", "tiếng anh", "tiếng pháp", "mùa xuân", "mùa hạ",
	"mùa thu", "mùa đông", "ngày tết", "lễ hội", "kỷ niệm", "sinh nhật", "đám cưới",
	"đám hỏi", "du lịch", "nghỉ dưỡng", "tham quan", "mua sắm", "tiêu dùng", "thị trường",
	"công ty", "doanh nghiệp", "cơ quan", "trường học", "bệnh viện", "nhà máy", "công viên",
	"siêu thị", "chợ", "đường phố", "xe cộ", "giao thông", "nhà cửa", "kiến trúc",
	"nội thất", "món ăn", "đồ uống", "nhà hàng", "quán cafe", "trà sữa", "ăn vặt",
	"thú cưng", "chó mèo", "cây cảnh", "hoa", "cỏ", "lá", "cành", "biển", "núi", "sông",
	"hồ", "trời", "mây", "gió", "nắng", "mưa",
}
