package site

// pageTemplate is the Go html/template for the single study page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body{{if .BuildID}} data-build="{{.BuildID}}"{{end}}{{if .LiveReload}} data-livereload="/livereload"{{end}}>
  <div class="progress-bar" id="progress-bar"></div>
  <div class="container">
    <div class="header">
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
      <h1>{{.Title}}</h1>
      <div class="tagline">{{.Tagline}}</div>
    </div>
    <nav class="nav">
      <ul>
        {{- range .Links}}
        <li><a href="{{.Href}}" data-target="{{.Target}}">{{.Label}}</a></li>
        {{- end}}
      </ul>
    </nav>
    {{range .Sections}}{{.}}{{end}}
  </div>
  <footer class="footer">
    <div class="footer-content">{{.Footer}}</div>
  </footer>
  <script src="script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet for the study page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --code-bg: #f6f8fa;
  --code-border: #e9ecef;
  --tip-bg: #fff9db;
  --tip-border: #fab005;
  --warn: #e03131;
  --content-max-width: 1000px;
  --table-stripe: #f8f9fa;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --accent-light: #1a1b2e;
  --code-bg: #f6f8fa;
  --code-border: #292e42;
  --tip-bg: #2a2a1f;
  --tip-border: #e0af68;
  --warn: #f7768e;
  --table-stripe: #1f2030;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

.container {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 24px 20px 48px;
}

/* ============ Progress ============ */
.progress-bar {
  position: fixed;
  top: 0;
  left: 0;
  height: 4px;
  width: 0;
  background: var(--accent);
  z-index: 200;
  transition: width 0.1s linear;
}

/* ============ Header & Nav ============ */
.header {
  position: relative;
  text-align: center;
  padding: 40px 0 24px;
}

.header h1 {
  font-size: 2.4rem;
  font-weight: 800;
  margin-bottom: 8px;
}

.tagline {
  color: var(--text-secondary);
  font-size: 1.1rem;
}

.theme-toggle {
  position: absolute;
  top: 12px;
  right: 0;
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 6px;
  line-height: 0;
}

.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: inline; }

.nav {
  position: sticky;
  top: 4px;
  z-index: 100;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
  margin-bottom: 24px;
}

.nav ul {
  list-style: none;
  display: flex;
  flex-wrap: wrap;
  gap: 4px;
  justify-content: center;
  padding: 10px 0;
}

.nav a {
  display: block;
  padding: 6px 14px;
  border-radius: 6px;
  color: var(--text-secondary);
  text-decoration: none;
  font-weight: 600;
  font-size: 0.9rem;
  transition: background 0.15s, color 0.15s;
}

.nav a:hover {
  background: var(--accent-light);
  color: var(--accent);
}

/* ============ Sections & Questions ============ */
.section {
  padding-top: 16px;
  margin-bottom: 48px;
  scroll-margin-top: 64px;
}

.section > h2 {
  font-size: 1.8rem;
  font-weight: 700;
  border-bottom: 2px solid var(--accent);
  padding-bottom: 8px;
  margin-bottom: 24px;
}

.question {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 10px;
  padding: 20px 24px;
  margin-bottom: 20px;
  box-shadow: var(--shadow);
}

.question:hover {
  box-shadow: var(--shadow-lg);
}

.question > h3 {
  font-size: 1.2rem;
  margin-bottom: 12px;
  color: var(--accent);
}

.question p {
  margin-bottom: 12px;
  color: var(--text-secondary);
}

.question ul, .question ol {
  margin: 0 0 12px 24px;
}

.question li {
  margin-bottom: 4px;
}

.example h4 {
  font-size: 0.95rem;
  margin: 12px 0 8px;
}

/* ============ Code ============ */
.question code {
  font-family: "JetBrains Mono", "Fira Code", "SF Mono", Consolas, monospace;
  font-size: 0.88em;
  background: var(--code-bg);
  color: #24292e;
  padding: 2px 6px;
  border-radius: 4px;
  border: 1px solid var(--code-border);
}

.code-block pre {
  margin: 0 0 16px;
  border-radius: 8px;
  border: 1px solid var(--code-border);
  overflow-x: auto;
  position: relative;
  padding: 16px;
  font-size: 0.85rem;
  line-height: 1.6;
}

.code-block pre code {
  background: none;
  border: none;
  padding: 0;
}

.copy-btn {
  position: absolute;
  top: 8px;
  right: 8px;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 4px;
  color: var(--text-muted);
  cursor: pointer;
  padding: 4px 8px;
  font-size: 0.75rem;
  opacity: 0;
  transition: opacity 0.2s;
}

.code-block pre:hover .copy-btn {
  opacity: 1;
}

.tip {
  background: var(--tip-bg);
  border-left: 4px solid var(--tip-border);
  border-radius: 0 6px 6px 0;
  padding: 10px 14px;
  margin-bottom: 12px;
}

.tip::before {
  content: "\1F4A1  ";
}

/* ============ Tables ============ */
.table-description {
  font-style: italic;
}

.comparison-table {
  overflow-x: auto;
  margin-bottom: 16px;
}

.comparison-table table {
  width: 100%;
  border-collapse: separate;
  border-spacing: 0;
  font-size: 0.88rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  overflow: hidden;
}

.comparison-table thead th {
  background: var(--accent);
  color: #fff;
  font-weight: 600;
  text-align: left;
  padding: 10px 14px;
  white-space: nowrap;
}

.comparison-table tbody td {
  padding: 10px 14px;
  border-bottom: 1px solid var(--border);
  vertical-align: top;
  line-height: 1.6;
}

.comparison-table tbody td:first-child {
  font-weight: 600;
}

.comparison-table tbody tr:nth-child(even) {
  background: var(--table-stripe);
}

.comparison-table tbody tr:hover {
  background: var(--accent-light);
}

/* ============ Extra info ============ */
.extra-info {
  border-top: 1px dashed var(--border);
  margin-top: 16px;
  padding-top: 12px;
}

.extra-info h3 {
  font-size: 1.05rem;
  margin-bottom: 10px;
}

.extra-info h4 {
  font-size: 0.95rem;
  margin: 10px 0 6px;
}

.generic-extra-info, .phase-details, .method-details {
  margin-bottom: 10px;
}

.deprecated-methods h4 {
  color: var(--warn);
}

/* ============ Footer ============ */
.footer {
  border-top: 1px solid var(--border);
  background: var(--bg-secondary);
  padding: 32px 20px;
  color: var(--text-secondary);
}

.footer-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
}

.footer-content h3, .footer-content h4 {
  margin: 12px 0 6px;
}

.footer-content ul {
  margin-left: 20px;
}

@media (max-width: 640px) {
  .header h1 { font-size: 1.8rem; }
  .question { padding: 16px; }
  .nav a { padding: 4px 8px; font-size: 0.8rem; }
}
`

// jsContent drives the progress bar, smooth navigation, theme toggle and,
// when the page is served, live reload.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // ===== Reading progress =====
  var bar = document.getElementById("progress-bar");

  function percent(offset, documentHeight, viewportHeight) {
    var scrollable = documentHeight - viewportHeight;
    if (!(scrollable > 0) || !isFinite(scrollable)) { return 0; }
    var p = offset / scrollable * 100;
    if (!(p > 0)) { return 0; }
    return p > 100 ? 100 : p;
  }

  function onScroll() {
    if (!bar) { return; }
    var p = percent(window.pageYOffset, document.body.offsetHeight, window.innerHeight);
    bar.style.width = p + "%";
  }

  window.addEventListener("scroll", onScroll, { passive: true });
  window.addEventListener("resize", onScroll);
  onScroll();

  // ===== Navigation =====
  document.querySelectorAll(".nav a[data-target]").forEach(function(link) {
    link.addEventListener("click", function(e) {
      e.preventDefault();
      var target = document.getElementById(link.getAttribute("data-target"));
      if (target) {
        target.scrollIntoView({ behavior: "smooth", block: "start" });
      }
    });
  });

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function getStoredTheme() {
    try { return localStorage.getItem("prepsite-theme"); } catch(e) { return null; }
  }

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("prepsite-theme", theme); } catch(e) {}
  }

  var stored = getStoredTheme();
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Copy buttons for code blocks =====
  document.querySelectorAll(".code-block pre").forEach(function(pre) {
    var btn = document.createElement("button");
    btn.className = "copy-btn";
    btn.textContent = "Copy";
    btn.addEventListener("click", function() {
      var code = pre.querySelector("code");
      if (code && navigator.clipboard) {
        navigator.clipboard.writeText(code.textContent).then(function() {
          btn.textContent = "Copied!";
          setTimeout(function() { btn.textContent = "Copy"; }, 2000);
        });
      }
    });
    pre.appendChild(btn);
  });

  // ===== Live reload =====
  var reloadPath = document.body.getAttribute("data-livereload");
  if (reloadPath && window.WebSocket) {
    var build = document.body.getAttribute("data-build") || "";
    var connect = function() {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      var ws = new WebSocket(proto + location.host + reloadPath);
      ws.onmessage = function(ev) {
        var msg;
        try { msg = JSON.parse(ev.data); } catch(e) { return; }
        if (msg.build && msg.build !== build) {
          location.reload();
        }
      };
      ws.onclose = function() { setTimeout(connect, 1000); };
    };
    connect();
  }
})();
`
