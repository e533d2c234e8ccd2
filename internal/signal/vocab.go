package signal

// Vocab is a curated set of lexical cues for one clinical construct.
// Matching is literal substring membership over the normalized utterance.
type Vocab []string

// Anxiety / panic
var (
	GADCore = Vocab{"نگرانی", "دلشوره", "استرس", "بی‌قراری", "تنش", "کنترل‌ناپذیر"}

	Panic = Vocab{
		"حمله پانیک", "حملهٔ پانیک", "حمله وحشت", "حمله اضطراب", "پانیک",
		"تپش قلب", "قلبم تند می‌زنه", "قلبم تند میزنه",
		"تنگی نفس", "نفس کم میارم", "احساس خفگی", "خفگی", "نمی‌تونم نفس بکشم", "نمیتونم نفس بکشم",
		"سرگیجه", "سبکی سر", "تعریق", "لرزش", "مورمور", "بی‌حسی", "گزگز",
		"ترس از مردن", "می‌میرم الان", "ترس از دیوونه شدن", "کنترل از دست میره",
		"حمله ناگهانی", "ناگهانی میاد", "یهویی میاد",
	}
)

// Obsessions / compulsions
var (
	OCD = Vocab{"وسواس", "افکار مزاحم", "ناخواسته", "اجبار", "شستن", "چک کردن", "مرتب کردن", "شمردن"}

	OCDStrong = Vocab{
		"کثیفه", "کثیف", "آلودگی", "آلوده", "نمی‌تونم به چیزی دست بزنم", "می‌شورم", "چند بار", "مرتب می‌شورم", "چک می‌کنم", "ضدعفونی",
	}
)

// Mood / sleep
var (
	Sleep        = Vocab{"بی‌خوابی", "بی خواب", "کم‌خوابی", "پرخوابی", "خواب", "بیدار", "صبح زود", "کابوس", "ریتم"}
	Depressive   = Vocab{"افسرد", "غم", "غمگین", "ناامید", "بی‌انگیزه", "بی‌علاقه", "لذت نمی‌برم", "پرخوابی", "پوچی", "خستگی", "حالم بده"}
	Irritability = Vocab{"عصبی", "عصبانی", "زودرنج", "تحریک‌پذیر", "تحریک پذیری"}

	Manic = Vocab{
		"پرانرژی", "انرژیم بالاست", "کاهش نیاز به خواب", "پرحرف",
		"ولخرجی", "ریسکی", "میل جنسی زیاد", "خوشحال غیرعادی", "تحریک‌پذیر",
		"مانیا", "هیپومانیا", "خلق بالا", "افکار تندتند", "نوسان خلق", "بی‌قرار", "تمرکز ندارم", "حواس‌پرتی",
	}
)

// Gender dysphoria vs paraphilic arousal
var (
	GenderDysphoria = Vocab{
		"با جنسیت خودم راحت نیستم", "ناراحتی از جنسیت", "دوست ندارم جنسیت خودم",
		"می‌خوام مرد باشم", "می‌خوام زن باشم",
		"اسم خودمو صدا نزنن", "ضمیر", "می‌خوام با ضمیر دیگه صدام کنن",
		"دوست دارم لباس جنس مقابل بپوشم", "نقش اجتماعی جنس دیگر", "ویژگی‌های جنسی اذیتم می‌کنه",
		"دوست ندارم بدن/اندام جنسی فعلی",
	}

	SexualArousal = Vocab{
		"تحریک", "برانگیختگی", "شهوت", "لذت جنسی", "فانتزی جنسی", "برایم تحریک‌کننده است", "ارگاسم",
	}
)

// Personality / trauma
var (
	AvoidantPD   = Vocab{"اجتناب", "طرد", "نقد", "کفایت", "بی‌عرضگی", "خجالت", "کمرویی", "تنهایی", "فاصله", "روابط صمیمی"}
	Trauma       = Vocab{"تروما", "حادثه", "آزار", "تصادف", "جنگ", "فاجعه", "مرگ ناگهانی", "تجاوز"}
	PTSDSymptoms = Vocab{"فلش‌بک", "کابوس", "اجتناب", "گوش به زنگ", "بی‌حسی هیجانی"}
	BPD          = Vocab{"ترس از رها شدن", "رابطه‌هام بالا پایین", "قهر", "مرزی", "بی‌ثباتی هویت"}
	Dissociative = Vocab{"مسخ شخصیت", "مسخ واقعیت", "غیرواقعی", "گسست", "هویت", "یادم نمیاد", "فراموشی"}
	Grief        = Vocab{"سوگ", "عزا", "عزاداری", "فقدان", "از دست دادم", "مرگ", "فوت"}
)

// Eating
var (
	BingeEating  = Vocab{"پرخوری", "مقدار زیاد غذا", "کنترل از دست رفته", "شرم", "گناه"}
	Compensatory = Vocab{"استفراغ", "ملین", "ورزش زیاد", "روزه", "جبران"}
	EatingCue    = Vocab{"بی‌اشتهایی", "لاغری", "چاقی", "وزن", "رژیم", "اندام", "بدن", "غذا"}
)

// Substance / medical
var (
	Substance = Vocab{"مواد", "الکل", "سیگار", "قلیان", "تریاک", "شیشه", "حشیش", "ترک", "دارو", "اعتیاد"}
	Medical   = Vocab{"بیماری جسمی", "تیروئید", "قلب", "صرع", "پارکینسون", "دیابت"}
)

// Sexual function
var (
	SexualGeneral = Vocab{"رابطه جنسی", "سکس", "میل جنسی", "انزال", "ارگاسم", "درد هنگام رابطه"}
	SexualED      = Vocab{"نعوظ", "نعوذ", "سفت نمیشه", "نعوظ سخت", "قادر به نعوظ نیستم"}
)

// Neurodevelopmental
var (
	ChildhoodOnset = Vocab{"از کودکی", "کودکی", "قبل از ۱۲", "قبل از12", "قبل از دوازده"}
	ADHD           = Vocab{"adhd", "بیش‌فعالی", "بیش فعالی", "نقص توجه"}
	attentionCues  = Vocab{"تمرکز", "حواس", "بی‌قراری"}
)

// Circadian
var (
	ShiftWork  = Vocab{"شیفت", "شیفت کاری", "نوبت‌کاری", "شیفت شب"}
	PhaseDelay = Vocab{"خیلی دیر می‌خوابم", "دیر می‌خوابم", "دیر بیدار می‌شم", "تا دیروقت بیدارم"}
)

// Body image / health anxiety
var (
	BDD       = Vocab{"بدریخت", "بدشکلی", "ظاهر", "دماغ", "پوست", "آینه", "عکس", "پوشاندن", "مقایسه"}
	HealthAnx = Vocab{"بیماری جدی", "سرطان", "ام اس", "ms", "آزمایش می‌دم", "چک می‌کنم بدن"}
)

// Peripartum / hypersomnolence
var (
	Peripartum          = Vocab{"بارداری", "حامله", "زایمان", "پس از زایمان", "پیرامون‌زایمان", "نوزاد", "شیردهی"}
	ExcessiveSleepiness = Vocab{"خواب‌آلودگی", "حملات خواب", "کاتاپلکسی", "چرت‌های ناگهانی"}
)

// Crisis phrases trigger the fixed safety reply before any triage runs
var EmergencyKeywords = Vocab{
	"خودکشی", "می‌خوام خودکشی", "میخوام خودکشی", "به خودم آسیب", "کشتن خود",
	"می‌خوام خودمو تموم کنم", "تمومش کنم", "میرم خودمو بکشم", "به دیگران آسیب", "کشتن کسی", "قتل",
}
