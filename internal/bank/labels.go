package bank

// DefaultLabels maps disorder ids to human-readable Persian labels. An
// override table loaded from the catalog store wins on key collision.
var DefaultLabels = map[string]string{
	"depression":      "اختلالات خلقی مرتبط (افسردگی)",
	"bipolar":         "اختلالات خلقی مرتبط (دوقطبی/مانیا)",
	"anxiety":         "اختلالات اضطرابی",
	"ocd_related":     "وسواس فکری‌عملی و اختلالات مرتبط",
	"trauma_stressor": "اختلالات مرتبط با تروما و استرسور",
	"psychosis":       "طیف اسکیزوفرنی و اختلالات روان‌پریشی",
	"eating":          "اختلالات خوردن",
	"sleep_wake":      "اختلالات خواب و بیداری",
	"neurodev":        "اختلالات عصبی‌رشدی",
	"dissociative":    "اختلالات گسستی",
	"somatic":         "سوماتیک/اضطراب بیماری",
	"substance":       "اختلالات مصرف مواد/الکل/تنباکو",
	"sexual_function": "اختلالات عملکرد جنسی",
	"paraphilic":      "پارافیلیک",
	"gender_identity": "دیفوریا/ناهماهنگی جنسیتی",
	"diff":            "سؤالات تمایز",

	// legacy numeric ids kept for older catalog exports
	"0":  "آپنهٔ انسدادی خواب (OSA)",
	"1":  "عصبی/رشدی/زبان/خلقی (پایه/وسواس و…)",
	"2":  "اضطراب/فوبیا/سوگ و مرتبط",
	"3":  "شخصیت/نامشخص و دیگر",
	"4":  "مصرف مواد/الکل/تنباکو",
	"5":  "عملکرد جنسی/پارافیلیک",
	"6":  "ADHD/یادگیری/هماهنگی",
	"7":  "اختلالات خلقی مرتبط (افسردگی)",
	"8":  "اختلالات خواب/ریتم/PMDD/DMDD",
	"9":  "کودک/وابستگی/دفع/روان‌پریشی ناشی از ماده/جسمی",
	"10": "سایر",
	"22": "اختلالات خلقی مرتبط (دوقطبی/مانیا)",
}
