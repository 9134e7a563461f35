package knowledge

import "github.com/ternarybob/responsa/internal/models"

// seedEntries is the compiled-in knowledge base. Loaded once at startup and
// never mutated.
var seedEntries = []models.QAPair{
	// AI & Machine Learning
	{
		ID:       "ai-1",
		Question: "What is RAG?",
		Answer:   "RAG (Retrieval-Augmented Generation) is an AI framework that combines retrieval of relevant information from a knowledge base with generative AI to produce more accurate and contextual responses. It helps ground AI responses in factual information and reduces hallucinations.",
		Keywords: []string{"rag", "retrieval", "augmented", "generation", "framework", "ai"},
		Category: "ai-concepts",
	},
	{
		ID:       "ai-2",
		Question: "What's the difference between AI, ML, and Deep Learning?",
		Answer:   "Artificial Intelligence (AI) is the broad concept of machines being able to carry out tasks in a way that we would consider 'smart'. Machine Learning (ML) is a subset of AI where machines learn from data without being explicitly programmed. Deep Learning is a further subset of ML that uses neural networks with many layers (hence 'deep') to analyze various factors of data. Think of it as concentric circles: Deep Learning is a subset of Machine Learning, which is a subset of AI.",
		Keywords: []string{"ai", "ml", "deep learning", "machine learning", "neural networks", "difference"},
		Category: "ai-concepts",
	},
	{
		ID:       "ai-3",
		Question: "How do large language models work?",
		Answer:   "Large Language Models (LLMs) like GPT-4 work by using transformer neural networks trained on vast amounts of text data. They learn patterns and relationships between words and concepts through a process called unsupervised learning. During training, they predict the next word in a sequence, which helps them understand language structure. When you prompt an LLM, it uses this learned knowledge to generate text that statistically follows from your input. The model doesn't truly 'understand' content like humans do, but rather predicts what text should come next based on patterns it has observed in its training data.",
		Keywords: []string{"llm", "large language model", "gpt", "transformer", "neural network", "nlp"},
		Category: "ai-concepts",
	},
	{
		ID:       "ai-4",
		Question: "What are AI hallucinations?",
		Answer:   "AI hallucinations are instances where AI models (particularly large language models) generate information that sounds plausible but is factually incorrect or completely fabricated. These occur because the models are predicting what text should come next based on patterns in their training data, not because they understand truth or facts. Hallucinations can include made-up references, non-existent facts, or false attributions. They're particularly problematic in contexts requiring factual accuracy. Techniques like RAG (Retrieval-Augmented Generation) help reduce hallucinations by grounding responses in verified information sources.",
		Keywords: []string{"hallucination", "fabrication", "incorrect", "false", "made-up", "confabulation"},
		Category: "ai-concepts",
	},
	{
		ID:       "ai-5",
		Question: "What is prompt engineering?",
		Answer:   "Prompt engineering is the practice of designing and refining inputs to AI systems (particularly large language models) to get more accurate, relevant, and useful outputs. It involves crafting prompts with specific instructions, context, examples, and constraints to guide the AI's responses. Effective prompt engineering can dramatically improve an AI's performance on tasks without changing the underlying model. Techniques include few-shot prompting (providing examples), chain-of-thought prompting (asking the AI to explain its reasoning step-by-step), and role prompting (assigning the AI a specific persona or role).",
		Keywords: []string{"prompt", "engineering", "prompt design", "instruction", "context", "few-shot"},
		Category: "ai-concepts",
	},

	// Web Development - Next.js
	{
		ID:       "nextjs-1",
		Question: "How do I connect to a database in Next.js?",
		Answer:   "To connect to a database in Next.js, you can use libraries like Prisma, Drizzle, or direct database clients. For Neon PostgreSQL specifically, use the @neondatabase/serverless package and create a connection with `const sql = neon(process.env.DATABASE_URL)`. Make sure your DATABASE_URL is properly set in your environment variables. Remember that in the App Router, database connections should typically be made in Server Components or Route Handlers for security.",
		Keywords: []string{"database", "connect", "neon", "postgresql", "prisma", "drizzle"},
		Category: "nextjs",
	},
	{
		ID:       "nextjs-2",
		Question: "What are the best practices for API routes in Next.js?",
		Answer:   "Best practices for Next.js API routes include: 1) Use the App Router's Route Handlers for better performance, 2) Implement proper error handling with try/catch blocks, 3) Validate input data before processing, 4) Use appropriate HTTP methods and status codes, 5) Implement rate limiting for public APIs, 6) Keep handlers focused on a single responsibility, 7) Use middleware for cross-cutting concerns like authentication, 8) Cache responses when appropriate, 9) Structure routes logically in your file system, and 10) Use TypeScript for better type safety.",
		Keywords: []string{"api", "routes", "best practices", "nextjs", "route handlers", "app router"},
		Category: "nextjs",
	},
	{
		ID:       "nextjs-3",
		Question: "How do I implement authentication in Next.js?",
		Answer:   "For authentication in Next.js, you can use NextAuth.js (now Auth.js), which supports various providers like OAuth, email/password, and magic links. Install it with `npm install next-auth`, set up your providers in an auth config file, and implement the session provider in your layout. With the App Router, set up a route.ts file in app/api/auth/[...nextauth] and configure your providers. You can then access the session in Server Components with `getServerSession()` and in Client Components with the useSession hook.",
		Keywords: []string{"authentication", "auth", "nextauth", "login", "oauth", "session"},
		Category: "nextjs",
	},
	{
		ID:       "nextjs-4",
		Question: "What is server-side rendering in Next.js?",
		Answer:   "Server-Side Rendering (SSR) is a rendering method where the HTML is generated on the server for each request. In Next.js, you can implement SSR by using Server Components (default in App Router) or by using getServerSideProps in the Pages Router. SSR improves SEO, provides faster First Contentful Paint, and works better for dynamic content that changes with each request. It differs from Static Site Generation (SSG), which pre-renders pages at build time.",
		Keywords: []string{"ssr", "server-side rendering", "rendering", "server components", "getserversideprops"},
		Category: "nextjs",
	},
	{
		ID:       "nextjs-5",
		Question: "How do I optimize images in Next.js?",
		Answer:   "To optimize images in Next.js, use the built-in Image component from 'next/image'. This component automatically optimizes images by: 1) Serving WebP or AVIF formats when supported, 2) Resizing images to the appropriate size for each device, 3) Lazy loading images that are outside the viewport, and 4) Preventing layout shift with proper sizing. For responsive images, you can use the 'fill' property with a parent container that has 'position: relative'. For further optimization, consider using a CDN like Vercel's Image Optimization or Cloudinary.",
		Keywords: []string{"image", "optimization", "next/image", "webp", "lazy loading", "responsive"},
		Category: "nextjs",
	},

	// JavaScript & TypeScript
	{
		ID:       "js-1",
		Question: "What are the differences between var, let, and const in JavaScript?",
		Answer:   "In JavaScript, `var`, `let`, and `const` are used for variable declarations but have important differences: `var` is function-scoped, hoisted to the top of its scope, can be redeclared and updated. `let` is block-scoped, can be updated but not redeclared in the same scope. `const` is block-scoped, cannot be updated or redeclared; the value is immutable, but for objects and arrays the properties/elements can still be modified. Best practice is to use `const` by default, and only use `let` when you need to reassign a variable. Avoid `var` in modern code.",
		Keywords: []string{"var", "let", "const", "variables", "scope", "hoisting", "javascript"},
		Category: "javascript",
	},
	{
		ID:       "js-2",
		Question: "How do Promises work in JavaScript?",
		Answer:   "Promises in JavaScript are objects representing the eventual completion or failure of an asynchronous operation. They have three states: pending, fulfilled, or rejected. Create a Promise with `new Promise((resolve, reject) => {...})`. Use .then() to handle successful results, .catch() for errors, and .finally() for cleanup. For handling multiple Promises, use Promise.all(), Promise.race(), Promise.any(), or Promise.allSettled(). Async/await is syntactic sugar over Promises, making asynchronous code look more like synchronous code.",
		Keywords: []string{"promise", "async", "await", "asynchronous", "then", "catch", "javascript"},
		Category: "javascript",
	},
	{
		ID:       "js-3",
		Question: "What are the benefits of using TypeScript over JavaScript?",
		Answer:   "TypeScript offers several benefits over JavaScript: 1) Static Type Checking: Catches type-related errors during development rather than at runtime, 2) Enhanced IDE Support: Better autocompletion, navigation, and refactoring tools, 3) Improved Code Documentation: Types serve as built-in documentation, 4) Safer Refactoring: The compiler catches errors when changing code, 5) Better Team Collaboration: Explicit interfaces make code intentions clearer, 6) Gradual Adoption: Can be added incrementally to JavaScript projects. TypeScript is a superset of JavaScript, so all valid JavaScript is also valid TypeScript.",
		Keywords: []string{"typescript", "javascript", "types", "static typing", "interfaces", "benefits"},
		Category: "typescript",
	},
	{
		ID:       "js-4",
		Question: "How do I handle errors in async/await functions?",
		Answer:   "To handle errors in async/await functions, use try/catch blocks around the awaited calls, throw when the response is not ok, and use finally for cleanup code that runs regardless of success or failure. Alternatively, handle errors at the call site with .catch(). For multiple async operations, use Promise.allSettled() to continue even if some operations fail.",
		Keywords: []string{"async", "await", "error handling", "try catch", "promise", "exception"},
		Category: "javascript",
	},
	{
		ID:       "js-5",
		Question: "What are React hooks and how do they work?",
		Answer:   "React hooks are functions that let you use state and other React features in functional components. They were introduced in React 16.8 to eliminate the need for class components. Core hooks include: useState (adds state to functional components), useEffect (handles side effects like data fetching or DOM manipulation), useContext, useReducer, useCallback, useMemo, and useRef. Hooks must be called at the top level of components and only from React function components or custom hooks. Custom hooks are functions that use other hooks and allow you to extract and reuse component logic.",
		Keywords: []string{"react", "hooks", "usestate", "useeffect", "functional components", "custom hooks"},
		Category: "react",
	},

	// CSS & Styling
	{
		ID:       "css-1",
		Question: "What is the difference between Flexbox and Grid in CSS?",
		Answer:   "Flexbox and Grid are CSS layout systems with different strengths: Flexbox (one-dimensional) is best for laying out items in a single row or column, excellent for distributing space and aligning items, great for navigation bars, card layouts, and centering items. Grid (two-dimensional) is designed for layouts with rows AND columns, excellent for defining complex grid-based layouts, perfect for overall page layouts and complex dashboard designs. They can be used together: Grid for the overall layout, and Flexbox for components within the grid.",
		Keywords: []string{"flexbox", "grid", "css", "layout", "responsive", "difference"},
		Category: "css",
	},
	{
		ID:       "css-2",
		Question: "How do CSS media queries work?",
		Answer:   "CSS media queries allow you to apply different styles based on device characteristics like screen size, resolution, or orientation. They use the @media rule followed by a condition. Common features to query include width/height (min-width, max-width), orientation, resolution, hover capability, and preferred color scheme. You can combine conditions with 'and', 'not', and 'only'. For responsive design, use media queries with relative units and a mobile-first approach.",
		Keywords: []string{"media queries", "responsive", "css", "breakpoints", "mobile-first", "@media"},
		Category: "css",
	},
	{
		ID:       "css-3",
		Question: "What are the benefits of using Tailwind CSS?",
		Answer:   "Tailwind CSS offers several benefits: 1) Productivity: Write CSS directly in your HTML/JSX with utility classes, 2) Consistency: Predefined design system with spacing, colors, typography scales, 3) Responsive Design: Built-in responsive utilities (sm:, md:, lg: prefixes), 4) Customization: Highly configurable through tailwind.config.js, 5) Performance: Only generates CSS for classes you actually use, 6) Dark Mode: Built-in dark mode support. The main trade-off is HTML verbosity, but the productivity gains often outweigh this concern.",
		Keywords: []string{"tailwind", "css", "utility classes", "responsive", "design system", "benefits"},
		Category: "css",
	},
	{
		ID:       "css-4",
		Question: "How do CSS animations and transitions differ?",
		Answer:   "CSS transitions and animations differ in complexity and control: Transitions are simple, from state A to state B only, triggered by state changes (hover, focus, class changes), limited to start and end states, example: `transition: opacity 0.3s ease;`. Animations can have multiple keyframes, run automatically or on triggers, are defined with @keyframes and the animation property, and can loop and alternate. Use transitions for simple state changes and animations for complex, multi-step effects.",
		Keywords: []string{"animation", "transition", "keyframes", "css", "effects", "difference"},
		Category: "css",
	},
	{
		ID:       "css-5",
		Question: "What are CSS variables and how do you use them?",
		Answer:   "CSS variables (officially called custom properties) allow you to store and reuse values throughout your stylesheet. They're defined with a double-dash prefix and accessed with the var() function. Benefits include: 1) Centralized values for easier updates, 2) Scope to specific elements or globally in :root, 3) Can be modified with JavaScript, 4) Can be changed in media queries, 5) Can reference other variables. For browser support, you can provide fallbacks: `var(--primary-color, #default)`.",
		Keywords: []string{"css variables", "custom properties", "var()", ":root", "theming", "dynamic css"},
		Category: "css",
	},

	// Databases & Backend
	{
		ID:       "db-1",
		Question: "What's the difference between SQL and NoSQL databases?",
		Answer:   "SQL databases store structured data in tables with predefined schemas, support relationships between tables and ACID transactions, scale vertically, and are best for complex queries and data integrity; examples include PostgreSQL, MySQL, SQLite. NoSQL databases have flexible schemas (document, key-value, column-family, graph), scale horizontally across servers, are often eventually consistent, and are best for rapid development, large scale, and unstructured data; examples include MongoDB, Redis, Cassandra, Neo4j. The choice depends on your data structure, scaling needs, and consistency requirements.",
		Keywords: []string{"sql", "nosql", "database", "relational", "document", "difference"},
		Category: "databases",
	},
	{
		ID:       "db-2",
		Question: "How do database indexes work and when should you use them?",
		Answer:   "Database indexes are data structures that improve the speed of data retrieval operations by creating efficient lookup paths to data. They store a sorted copy of selected columns using B-tree, hash, or other structures, trading faster reads for slower writes. Use indexes on columns frequently used in WHERE clauses, JOIN operations, ORDER BY or GROUP BY, and for unique constraints. Avoid them on small tables, columns with low cardinality, and tables with frequent large batch updates. Index only what's necessary and regularly analyze query performance.",
		Keywords: []string{"index", "database", "performance", "query", "b-tree", "optimization"},
		Category: "databases",
	},
	{
		ID:       "db-3",
		Question: "What are database transactions and ACID properties?",
		Answer:   "Database transactions are units of work executed as a single, indivisible operation. They ensure data integrity by following ACID properties: Atomicity (all or nothing; failures roll back the whole transaction), Consistency (the database moves from one valid state to another), Isolation (concurrent transactions execute as if sequential), and Durability (committed work survives system failure). Transactions are implemented with BEGIN, COMMIT, and ROLLBACK statements; isolation levels control the trade-off between consistency and performance.",
		Keywords: []string{"transaction", "acid", "atomicity", "consistency", "isolation", "durability"},
		Category: "databases",
	},
	{
		ID:       "db-4",
		Question: "What is an ORM and what are its advantages and disadvantages?",
		Answer:   "An Object-Relational Mapper (ORM) converts data between object-oriented programming languages and relational databases. Advantages: productivity, abstraction over SQL, type safety, migration tooling, protection against SQL injection, and cross-database portability. Disadvantages: performance overhead from generated SQL, a learning curve, difficulty expressing very complex queries, abstraction leakage, and over-fetching. Popular ORMs include Prisma and Drizzle for Node.js, Hibernate for Java, SQLAlchemy for Python, and ActiveRecord for Ruby.",
		Keywords: []string{"orm", "object-relational mapper", "database", "prisma", "drizzle", "abstraction"},
		Category: "databases",
	},
	{
		ID:       "db-5",
		Question: "What is database normalization and when should you denormalize?",
		Answer:   "Database normalization structures a relational database to reduce data redundancy and improve data integrity by dividing large tables into smaller ones with defined relationships. The normal forms (1NF, 2NF, 3NF and beyond) progressively eliminate duplication and dependencies. Denormalization adds redundant data to improve read performance; consider it when read performance is critical, queries join many tables, or the application is read-heavy. Modern designs often mix normalized core tables with denormalized or materialized views for specific read patterns.",
		Keywords: []string{"normalization", "denormalization", "database design", "redundancy", "data integrity", "performance"},
		Category: "databases",
	},

	// Security
	{
		ID:       "sec-1",
		Question: "What are common web security vulnerabilities and how do you prevent them?",
		Answer:   "Common web security vulnerabilities include Cross-Site Scripting (XSS; prevent by escaping output and using Content-Security-Policy), SQL Injection (use parameterized queries and input validation), Cross-Site Request Forgery (CSRF tokens, SameSite cookies), broken authentication (strong password policies, MFA, secure sessions), sensitive data exposure (encryption, HTTPS), broken access control (least privilege, robust authorization checks), security misconfiguration, insecure deserialization, and components with known vulnerabilities (regular dependency updates, scanning). Follow the OWASP Top 10 guidelines.",
		Keywords: []string{"security", "vulnerability", "xss", "sql injection", "csrf", "owasp"},
		Category: "security",
	},
	{
		ID:       "sec-2",
		Question: "How does HTTPS work and why is it important?",
		Answer:   "HTTPS encrypts HTTP communications using TLS. During the handshake the server presents its certificate, the client verifies it with a Certificate Authority, and the parties negotiate encryption algorithms and exchange keys; data then flows encrypted, using symmetric encryption for speed and asymmetric encryption for key exchange. HTTPS provides confidentiality, integrity, and authentication, brings SEO benefits, and is required for many modern web features. Implement it with a valid certificate (often free via Let's Encrypt), proper configuration, and HSTS headers.",
		Keywords: []string{"https", "ssl", "tls", "encryption", "certificate", "security"},
		Category: "security",
	},
	{
		ID:       "sec-3",
		Question: "What is JWT authentication and how does it work?",
		Answer:   "JWT (JSON Web Token) authentication is a stateless mechanism using encoded, signed tokens. After the server validates credentials it issues a JWT with a header (type and algorithm), payload (claims), and signature; the client stores it and sends it with subsequent requests, and the server validates the signature. Advantages: stateless, scalable, cross-domain, and rich in claims. Considerations: store JWTs in HttpOnly cookies to prevent XSS, keep tokens short-lived with refresh rotation, never put sensitive data in the payload (it's base64 encoded, not encrypted), and use strong signing algorithms like RS256.",
		Keywords: []string{"jwt", "authentication", "token", "stateless", "json web token", "authorization"},
		Category: "security",
	},
	{
		ID:       "sec-4",
		Question: "What is CORS and how does it work?",
		Answer:   "Cross-Origin Resource Sharing (CORS) is a browser security feature restricting web pages from making requests to a different domain than the one that served the page. The browser adds an Origin header, the server responds with Access-Control-Allow-Origin and related headers, and the browser allows or blocks the response accordingly. Non-simple requests trigger a preflight OPTIONS request first. CORS is configured server-side; it protects users from malicious sites using their credentials against your API, not your server from attack.",
		Keywords: []string{"cors", "cross-origin", "same-origin policy", "preflight", "access-control", "security"},
		Category: "security",
	},
	{
		ID:       "sec-5",
		Question: "What are best practices for storing passwords?",
		Answer:   "Never store passwords in plaintext. Use strong, slow hashing algorithms designed for passwords: Argon2 (preferred), bcrypt, or PBKDF2. Include unique salts per hash to prevent rainbow table attacks, tune work factors to keep brute force expensive, rate-limit login attempts, offer multi-factor authentication, and monitor for suspicious logins. Prefer a trusted authentication library or service over rolling your own, implement a secure password reset process, and validate passwords against common-password lists.",
		Keywords: []string{"password", "hashing", "salt", "bcrypt", "argon2", "security", "authentication"},
		Category: "security",
	},

	// Performance & Optimization
	{
		ID:       "perf-1",
		Question: "How can I optimize website loading performance?",
		Answer:   "To optimize website loading performance: minimize HTTP requests (bundling, lazy loading), optimize assets (compress images to WebP/AVIF, minify CSS/JS/HTML), leverage browser caching with appropriate headers, enable GZIP/Brotli compression and a CDN, optimize the critical rendering path (inline critical CSS, defer non-critical JavaScript), apply code splitting and tree shaking, and optimize the server side (caching, edge functions, efficient database queries). Measure with Lighthouse or WebPageTest and focus on Core Web Vitals (LCP, FID/INP, CLS).",
		Keywords: []string{"performance", "optimization", "loading", "speed", "web vitals", "lighthouse"},
		Category: "performance",
	},
	{
		ID:       "perf-2",
		Question: "What are Core Web Vitals and why are they important?",
		Answer:   "Core Web Vitals are specific metrics Google considers important for user experience: Largest Contentful Paint (LCP) measures loading performance (good: ≤ 2.5 seconds), First Input Delay / Interaction to Next Paint (FID/INP) measures interactivity (INP good: ≤ 200ms), and Cumulative Layout Shift (CLS) measures visual stability (good: ≤ 0.1). They matter because they directly impact user experience, are used as ranking factors in Google Search, and provide standardized, real-user-focused performance metrics. Measure them with Lighthouse, PageSpeed Insights, or the web-vitals library.",
		Keywords: []string{"core web vitals", "lcp", "fid", "inp", "cls", "performance", "seo"},
		Category: "performance",
	},
	{
		ID:       "perf-3",
		Question: "What is code splitting and how does it improve performance?",
		Answer:   "Code splitting breaks your JavaScript bundle into smaller chunks loaded on demand rather than upfront. Implementation methods include route-based splitting, component-based splitting, and separating vendor code. In React/Next.js use dynamic imports, React.lazy() with Suspense, and Next.js automatic per-route splitting. Benefits: reduced initial load time, faster time to interactive, better caching of unchanged chunks, and improved performance on slow networks. Balance chunk granularity against HTTP request overhead and preload critical chunks.",
		Keywords: []string{"code splitting", "lazy loading", "dynamic import", "bundle size", "performance", "webpack"},
		Category: "performance",
	},
	{
		ID:       "perf-4",
		Question: "How do you optimize React application performance?",
		Answer:   "To optimize React application performance: use React.memo and memoized callbacks to avoid unnecessary re-renders, keep state as local as possible, virtualize long lists (react-window), paginate large datasets, split code with React.lazy and Suspense, use useCallback and useMemo with correct dependency arrays, profile with React DevTools to find real bottlenecks, and consider server-side rendering or static generation. Premature optimization adds complexity, so measure first.",
		Keywords: []string{"react", "performance", "optimization", "memo", "useMemo", "code splitting", "rendering"},
		Category: "performance",
	},
	{
		ID:       "perf-5",
		Question: "What are service workers and how do they improve performance?",
		Answer:   "Service workers are JavaScript files that run in the background, separate from the web page. They improve performance through offline caching of assets and API responses, network strategies like cache-first and stale-while-revalidate, faster subsequent page loads, reduced server load, and background sync and prefetching. They only work on HTTPS, have a complex lifecycle, and need careful update strategies to avoid serving stale content. Service workers are fundamental to Progressive Web Apps.",
		Keywords: []string{"service worker", "pwa", "offline", "caching", "workbox", "performance"},
		Category: "performance",
	},
}
