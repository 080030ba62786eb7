package config

const (
	defaultFactsPath   = "data/facts.txt"
	defaultStatePath   = "data/state.json"
	defaultOutputDir   = "docs"
	defaultLogLevel    = "info"
	defaultPreviewPort = 8080

	defaultSiteTitle       = "AI Facts Daily"
	defaultSiteDescription = "One short AI fact every day. Simple, snackable, and useful."
	defaultAffiliateURL    = "https://www.amazon.com/s?k=artificial+intelligence+books&tag=aitoolsvault-20"
	defaultAffiliateLabel  = "Recommended AI Books"
	defaultDisclosure      = "Disclosure: As an Amazon Associate I earn from qualifying purchases."
	defaultFactLabel       = "AI Fact"
)

const defaultStyleSheet = `
:root { --bg:#0b0c10; --card:#121418; --text:#e6e8eb; --muted:#9aa3ab; --link:#7dd3fc; --accent:#4ade80; }
*{box-sizing:border-box} body{margin:0;font-family:system-ui,-apple-system,Segoe UI,Roboto,Inter,Arial,sans-serif;background:var(--bg);color:var(--text);line-height:1.6}
a{color:var(--link);text-decoration:none} a:hover{text-decoration:underline}
.wrap{max-width:860px;margin:0 auto;padding:24px}
.nav{display:flex;justify-content:space-between;align-items:center;margin-bottom:16px}
.brand{font-weight:700;font-size:20px}
.card{background:var(--card);border-radius:16px;padding:20px;margin:12px 0;box-shadow:0 10px 20px rgba(0,0,0,.25)}
.meta{color:var(--muted);font-size:14px;margin-bottom:8px}
.title{font-size:22px;margin:0 0 10px 0}
.btn{display:inline-block;background:var(--accent);color:#0b0c10;padding:10px 14px;border-radius:999px;font-weight:700}
.footer{color:var(--muted);font-size:13px;margin-top:30px}
ul.posts{list-style:none;padding:0;margin:0} ul.posts li{margin:10px 0}
hr{border:none;border-top:1px solid #223}
`
