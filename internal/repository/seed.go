package repository

import "youthy-chat/internal/models"

// SeedPolicies is the built-in dataset used when the database is empty
// or unreachable. The entries are modeled on real programs so demo
// answers stay plausible.
func SeedPolicies() []models.PolicyRecord {
	return []models.PolicyRecord{
		{
			ID:                "seoul-youth-housing-sh",
			Title:             "서울청년주택 (SH공사)",
			Category:          models.CategoryHousing,
			Region:            "서울",
			Description:       "서울시 청년을 위한 저렴한 임대주택을 공급합니다. 시세 대비 80% 수준의 임대료로 최대 4년간 거주할 수 있습니다.",
			SupportAmount:     "시세 대비 80% 수준 임대료, 최대 4년 거주",
			EligibilityText:   "만 19세~39세 무주택 청년, 소득 기준 충족",
			ApplicationPeriod: "상시모집 (분기별)",
			ApplicationMethod: "서울주택도시공사 홈페이지 온라인 신청",
			ContactInfo:       "서울주택도시공사 1600-3456",
			URL:               "https://www.i-sh.co.kr/",
		},
		{
			ID:                "seoul-jeonse-loan",
			Title:             "서울시 청년 전세자금대출",
			Category:          models.CategoryHousing,
			Region:            "서울",
			Description:       "청년들의 전세자금 마련을 위한 저금리 대출 지원 정책입니다. 연 1.2% 저금리로 최대 2억원까지 대출 가능합니다.",
			SupportAmount:     "연 1.2% 저금리, 최대 2억원",
			EligibilityText:   "만 19세~34세, 연소득 5천만원 이하",
			ApplicationPeriod: "1월~12월 (예산 소진 시 조기 마감)",
			ApplicationMethod: "서울시 주거포털 온라인 신청",
			ContactInfo:       "서울시청 주택정책과 02-2133-7000",
			URL:               "https://housing.seoul.go.kr/",
		},
		{
			ID:                "youth-housing-voucher",
			Title:             "청년 주거급여 (주거바우처)",
			Category:          models.CategoryHousing,
			Region:            models.RegionNationwide,
			Description:       "저소득 청년 가구의 주거비 부담 경감을 위한 임대료 지원 정책입니다. 월 최대 32만원을 지원합니다.",
			SupportAmount:     "월 최대 32만원 임대료 지원",
			EligibilityText:   "만 19세~29세, 기준 중위소득 46% 이하 가구",
			ApplicationPeriod: "연중 상시",
			ApplicationMethod: "복지로 온라인 신청 또는 주민센터 방문",
			ContactInfo:       "주거급여 콜센터 1600-0777",
			URL:               "https://www.bokjiro.go.kr/",
		},
		{
			ID:                "busan-youth-rent",
			Title:             "부산 청년 월세 지원",
			Category:          models.CategoryHousing,
			Region:            "부산",
			Description:       "부산시 거주 청년 1인 가구의 월세 부담을 덜어주는 지원 사업입니다. 월 20만원씩 최대 10개월간 지원합니다.",
			SupportAmount:     "월 20만원, 최대 10개월",
			EligibilityText:   "부산시 거주 만 19세~34세 1인 가구, 소득 기준 충족",
			ApplicationPeriod: "상반기 모집 (3월~4월)",
			ApplicationMethod: "부산청년플랫폼 온라인 신청",
			ContactInfo:       "부산시 청년정책과 051-888-4921",
			URL:               "https://young.busan.go.kr/",
		},
		{
			ID:                "seoul-job-success",
			Title:             "서울 청년 취업성공패키지",
			Category:          models.CategoryEmployment,
			Region:            "서울",
			Description:       "취업준비부터 성공까지 단계별 맞춤 지원 프로그램입니다. 최장 12개월간 취업상담, 직업훈련, 취업성공수당을 지원합니다.",
			SupportAmount:     "취업성공수당 최대 150만원, 단계별 훈련비",
			EligibilityText:   "만 18세~34세 서울시 거주 미취업자",
			ApplicationPeriod: "분기별 모집",
			ApplicationMethod: "서울청년포털 온라인 신청",
			ContactInfo:       "서울시 일자리정책과 02-2133-5456",
			URL:               "https://youth.seoul.go.kr/",
		},
		{
			ID:                "youth-tomorrow-fund",
			Title:             "청년내일채움공제",
			Category:          models.CategoryEmployment,
			Region:            models.RegionNationwide,
			Description:       "중소기업에 취업한 청년의 장기근속과 목돈 마련을 지원합니다. 2년 근속 시 본인 납입금에 기업과 정부 지원금을 더해 돌려받습니다.",
			SupportAmount:     "2년 만기 시 1,200만원 수령",
			EligibilityText:   "만 15세~34세 중소기업 정규직 신규 취업자",
			ApplicationPeriod: "채용일로부터 6개월 이내",
			ApplicationMethod: "워크넷 청년공제 누리집 신청",
			ContactInfo:       "고용노동부 고객상담센터 1350",
			URL:               "https://www.work.go.kr/youngtomorrow/",
		},
		{
			ID:                "youth-startup-academy",
			Title:             "청년창업사관학교",
			Category:          models.CategoryStartup,
			Region:            models.RegionNationwide,
			Description:       "유망 창업 아이템을 보유한 청년 창업자를 선발해 사업화 자금과 창업 공간, 멘토링을 일괄 지원합니다.",
			SupportAmount:     "사업화 자금 최대 1억원, 창업 공간 제공",
			EligibilityText:   "만 39세 이하 예비 창업자 또는 창업 3년 이내 기업 대표",
			ApplicationPeriod: "연 1회 모집 (1월~2월)",
			ApplicationMethod: "K-스타트업 누리집 온라인 신청",
			ContactInfo:       "중소벤처기업진흥공단 055-751-9000",
			URL:               "https://start.kosmes.or.kr/",
		},
		{
			ID:                "kdigital-training",
			Title:             "K-디지털 트레이닝",
			Category:          models.CategoryEducation,
			Region:            models.RegionNationwide,
			Description:       "인공지능, 빅데이터 등 디지털 분야 실무 훈련 과정을 무료로 제공합니다. 훈련 기간 중 훈련장려금도 지급합니다.",
			SupportAmount:     "훈련비 전액 지원, 월 최대 11만6천원 훈련장려금",
			EligibilityText:   "국민내일배움카드 발급 가능한 구직 청년",
			ApplicationPeriod: "과정별 상시 모집",
			ApplicationMethod: "HRD-Net에서 과정 검색 후 신청",
			ContactInfo:       "고용노동부 고객상담센터 1350",
			URL:               "https://www.hrd.go.kr/",
		},
		{
			ID:                "youth-hope-savings",
			Title:             "청년희망적금",
			Category:          models.CategoryAssetBuilding,
			Region:            models.RegionNationwide,
			Description:       "청년층의 자산형성을 위한 우대금리 적금상품입니다. 연 5% 우대금리에 만기 시 저축장려금을 더해 지급합니다.",
			SupportAmount:     "연 5% 우대금리, 월 50만원까지 납입, 2년 만기",
			EligibilityText:   "만 19세~34세, 연소득 3,600만원 이하",
			ApplicationPeriod: "연중 (은행별 상이)",
			ApplicationMethod: "시중은행 앱 또는 영업점 가입",
			ContactInfo:       "서민금융진흥원 1397",
			URL:               "https://www.kinfa.or.kr/",
		},
		{
			ID:                "youth-leap-account",
			Title:             "청년도약계좌",
			Category:          models.CategoryAssetBuilding,
			Region:            models.RegionNationwide,
			Description:       "5년간 매월 납입하면 정부 기여금과 비과세 혜택을 더해 목돈 마련을 돕는 계좌입니다.",
			SupportAmount:     "월 최대 70만원 납입, 정부 기여금 월 최대 2만4천원",
			EligibilityText:   "만 19세~34세, 개인소득 7,500만원 이하",
			ApplicationPeriod: "매월 초 신청 기간 운영",
			ApplicationMethod: "취급은행 앱 비대면 신청",
			ContactInfo:       "서민금융진흥원 1397",
			URL:               "https://www.kinfa.or.kr/",
		},
		{
			ID:                "youth-mind-care",
			Title:             "청년마음건강 지원사업",
			Category:          models.CategoryWelfare,
			Region:            models.RegionNationwide,
			Description:       "심리적 어려움을 겪는 청년에게 전문 심리상담 서비스를 바우처로 제공합니다.",
			SupportAmount:     "1:1 심리상담 10회 바우처 (본인부담금 일부)",
			EligibilityText:   "만 19세~34세 청년 누구나",
			ApplicationPeriod: "연중 상시",
			ApplicationMethod: "복지로 또는 주민센터 신청",
			ContactInfo:       "보건복지상담센터 129",
			URL:               "https://www.bokjiro.go.kr/",
		},
		{
			ID:                "youth-culture-pass",
			Title:             "청년 문화예술패스",
			Category:          models.CategoryCulture,
			Region:            models.RegionNationwide,
			Description:       "성년기에 진입한 청년에게 공연과 전시 관람비를 지원해 문화 향유 기회를 넓힙니다.",
			SupportAmount:     "1인당 최대 15만원 관람 포인트",
			EligibilityText:   "당해 연도 만 19세가 되는 청년",
			ApplicationPeriod: "3월~11월 (예산 소진 시 마감)",
			ApplicationMethod: "협력 예매처 온라인 발급",
			ContactInfo:       "문화체육관광부 044-203-2000",
			URL:               "https://www.mcst.go.kr/",
		},
	}
}
